package handlers

import "fmt"

func errMissingField(name string) error {
	return fmt.Errorf("%s is required", name)
}

func errInvalidField(name string) error {
	return fmt.Errorf("invalid %s", name)
}
