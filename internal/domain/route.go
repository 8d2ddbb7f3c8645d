package domain

// Route is derived by GetRoutes/GetConnectedRoutes only; it is never
// stored. It groups the ordered stops of one line or line-group together
// with the train type (if any) that runs them.
type Route struct {
	TrainType *TrainType `json:"train_type,omitempty"`
	Stops     []Station  `json:"stops"`
}
