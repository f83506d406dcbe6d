package trainer

// Trainer is a staff record attached to a gym. The admin panel only lists
// trainers; assignment to members happens outside this system.
type Trainer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty,omitempty"`
	GymID     string `json:"gymId"`
}

type CreateTrainerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Specialty string `json:"specialty"`
}
