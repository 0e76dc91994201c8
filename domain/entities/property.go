package entities

// Property is a bookable room or unit.
type Property struct {
	ItemKeys
	ID                       string `dynamodbav:"id" json:"id"`
	RoomNumber               string `dynamodbav:"room_number" json:"room_number"`
	RoomName                 string `dynamodbav:"room_name" json:"room_name"`
	SeaView                  bool   `dynamodbav:"sea_view" json:"sea_view"`
	NumOfSingleBeds          int    `dynamodbav:"num_of_single_beds" json:"num_of_single_beds"`
	NumOfDoubleBeds          int    `dynamodbav:"num_of_double_beds" json:"num_of_double_beds"`
	NumOfSplitableDoubleBeds int    `dynamodbav:"num_of_splitable_double_beds" json:"num_of_splitable_double_beds"`
	Floor                    int    `dynamodbav:"floor" json:"floor"`
	RoomCount                int    `dynamodbav:"room_count" json:"room_count"`
	Timestamps
}

// CreatePropertyRequest is the POST /properties body.
type CreatePropertyRequest struct {
	RoomNumber               string `json:"room_number" validate:"required"`
	RoomName                 string `json:"room_name" validate:"required"`
	SeaView                  bool   `json:"sea_view"`
	NumOfSingleBeds          int    `json:"num_of_single_beds" validate:"min=0"`
	NumOfDoubleBeds          int    `json:"num_of_double_beds" validate:"min=0"`
	NumOfSplitableDoubleBeds int    `json:"num_of_splitable_double_beds" validate:"min=0"`
	Floor                    int    `json:"floor"`
	RoomCount                int    `json:"room_count" validate:"min=0"`
}

// UpdatePropertyRequest is the PUT /properties/{id} body; only present
// fields are written.
type UpdatePropertyRequest struct {
	RoomNumber               *string `json:"room_number,omitempty"`
	RoomName                 *string `json:"room_name,omitempty"`
	SeaView                  *bool   `json:"sea_view,omitempty"`
	NumOfSingleBeds          *int    `json:"num_of_single_beds,omitempty" validate:"omitempty,min=0"`
	NumOfDoubleBeds          *int    `json:"num_of_double_beds,omitempty" validate:"omitempty,min=0"`
	NumOfSplitableDoubleBeds *int    `json:"num_of_splitable_double_beds,omitempty" validate:"omitempty,min=0"`
	Floor                    *int    `json:"floor,omitempty"`
	RoomCount                *int    `json:"room_count,omitempty" validate:"omitempty,min=0"`
}
