package entities

import "fmt"

// PartitionKey builds the base-table partition key for an entity.
func PartitionKey(entityType, id string) string {
	return fmt.Sprintf("%s#%s", entityType, id)
}

// PropertyKeys derives the index keys for a property record.
func PropertyKeys(id string) ItemKeys {
	return ItemKeys{
		PK:     PartitionKey(TypeProperty, id),
		SK:     SortKeyMetadata,
		GSI1PK: TypeProperty,
		GSI1SK: id,
	}
}

// GuestKeys derives the index keys for a guest record.
func GuestKeys(id string) ItemKeys {
	return ItemKeys{
		PK:     PartitionKey(TypeGuest, id),
		SK:     SortKeyMetadata,
		GSI1PK: TypeGuest,
		GSI1SK: id,
	}
}

// StaffKeys derives the index keys for a staff record.
func StaffKeys(id string) ItemKeys {
	return ItemKeys{
		PK:     PartitionKey(TypeStaff, id),
		SK:     SortKeyMetadata,
		GSI1PK: TypeStaff,
		GSI1SK: id,
	}
}

// TaskKeys derives the index keys for a task record. Tasks invert on
// the reservation they belong to.
func TaskKeys(id, reservationInfoID string) ItemKeys {
	return ItemKeys{
		PK:     PartitionKey(TypeTask, id),
		SK:     SortKeyMetadata,
		GSI1PK: TypeTask,
		GSI1SK: id,
		GSI2PK: PartitionKey(TypeReservation, reservationInfoID),
		GSI2SK: PartitionKey(TypeTask, id),
	}
}

// MessageKeys derives the index keys for a message record. The date
// must already be in sortable YYYYMMDD form.
func MessageKeys(id, reservationID, dateYyyymmdd string) ItemKeys {
	return ItemKeys{
		PK:     PartitionKey(TypeMessage, id),
		SK:     SortKeyMetadata,
		GSI1PK: TypeMessage,
		GSI1SK: dateYyyymmdd,
		GSI2PK: PartitionKey(TypeReservation, reservationID),
		GSI2SK: PartitionKey(TypeMessage, id),
	}
}

// ReservationKeys derives the index keys for a reservation record.
// Both stay dates must already be in sortable YYYYMMDD form; GSI3
// orders the property's reservations by stay window.
func ReservationKeys(id, guestID, roomID, checkinYyyymmdd, checkoutYyyymmdd string) ItemKeys {
	return ItemKeys{
		PK:     PartitionKey(TypeReservation, id),
		SK:     SortKeyMetadata,
		GSI1PK: TypeReservation,
		GSI1SK: checkinYyyymmdd,
		GSI2PK: PartitionKey(TypeGuest, guestID),
		GSI2SK: PartitionKey(TypeReservation, id),
		GSI3PK: PartitionKey(TypeProperty, roomID),
		GSI3SK: fmt.Sprintf("%s#%s", checkinYyyymmdd, checkoutYyyymmdd),
	}
}
