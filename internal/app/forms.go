// ABOUTME: Length limits for words entered through the CLI and MCP tools
// ABOUTME: New words follow the add form's bounds, edits the wider edit form's
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/harper/wordbook/internal/store"
)

var validate = validator.New()

type newWordForm struct {
	Vocabulary string  `validate:"min=2,max=20"`
	Meaning    string  `validate:"min=2,max=100"`
	Translate  string  `validate:"min=2,max=100"`
	Example    *string `validate:"omitempty,min=2,max=1000"`
}

type wordEditForm struct {
	Vocabulary string  `validate:"min=2,max=100"`
	Meaning    string  `validate:"min=2,max=1000"`
	Translate  string  `validate:"min=2,max=100"`
	Example    *string `validate:"omitempty,min=2,max=1000"`
}

// ValidateNewWord checks a word about to be added. Category is free-form.
func ValidateNewWord(in store.WordInput) error {
	return checkForm(newWordForm{
		Vocabulary: in.Vocabulary,
		Meaning:    in.Meaning,
		Translate:  in.Translate,
		Example:    in.Example,
	})
}

// ValidateWordEdit checks the replacement fields of an existing word.
func ValidateWordEdit(in store.WordInput) error {
	return checkForm(wordEditForm{
		Vocabulary: in.Vocabulary,
		Meaning:    in.Meaning,
		Translate:  in.Translate,
		Example:    in.Example,
	})
}

func checkForm(form any) error {
	err := validate.Struct(form)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", store.ErrInvalidArgument, strings.Join(msgs, "; "))
}
