package domain

// User is the authenticated admin's profile as returned by the details
// endpoint. PortUUID is the stable routing identifier attached to every
// event submission.
type User struct {
	PortUUID string `json:"port_uuid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
