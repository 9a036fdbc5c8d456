package cartControllers_test

import "fmt"

func cartPath(id uint) string {
	return fmt.Sprintf("/cart/%d/", id)
}
