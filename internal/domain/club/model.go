package club

import "fmt"

// Club is a member club that spends points to book competition places.
type Club struct {
	Name   string
	Email  string
	Points int
}

func (c Club) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("club email is required for %s", c.Name)
	}
	if c.Points < 0 {
		return fmt.Errorf("club points must be >= 0 for %s", c.Name)
	}

	return nil
}
