package models

import "github.com/andrewpaige1/typedeck-api/utils"

// ensurePublicID fills id on insert unless the caller already chose one.
func ensurePublicID(id *string) error {
	if *id != "" {
		return nil
	}
	publicID, err := utils.NewPublicID()
	if err != nil {
		return err
	}
	*id = publicID
	return nil
}
