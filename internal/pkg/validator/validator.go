package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/dialog-service/internal/rest/api"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateDialog(req *api.CreateDialogRequest, creatorID string) error {
	if strings.TrimSpace(req.CompanionId) == "" {
		return fmt.Errorf("companion_id is required")
	}

	if req.CompanionId == creatorID {
		return fmt.Errorf("cannot open a dialog with yourself")
	}

	return nil
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > 500 {
		return fmt.Errorf("content exceeds maximum length of 500 characters")
	}

	return nil
}
