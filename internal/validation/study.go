package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iudanet/studysync/internal/models"
)

// ErrInvalidNumber возвращается в строгом режиме для нечисловых полей формы
var ErrInvalidNumber = errors.New("invalid number")

// Значения формы создания исследования по умолчанию
const (
	DefaultCompletionCode  = "2CC39346"
	DefaultParticipants    = 500
	DefaultDurationMinutes = 1
	DefaultReward          = "0.13"
)

// ParseCount разбирает целое неотрицательное значение поля формы.
// В нестрогом режиме некорректный ввод дает 0
func ParseCount(field, value string, strict bool) (int, error) {
	v := strings.TrimSpace(value)
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		if strict {
			return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, field, value)
		}
		return 0, nil
	}
	return n, nil
}

// ParseReward разбирает денежную сумму. Запятая принимается как десятичный разделитель.
// Отрицательные суммы и суммы, не помещающиеся в int64 минимальных единиц, некорректны
func ParseReward(value string, strict bool) (decimal.Decimal, error) {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() || !models.FitsMinorUnits(d) {
		if strict {
			return decimal.Zero, fmt.Errorf("%w: reward=%q", ErrInvalidNumber, value)
		}
		return decimal.Zero, nil
	}
	return d, nil
}

// StudyForm is the raw text of the study creation form.
type StudyForm struct {
	Title            string
	InternalName     string
	Description      string
	ExternalStudyURL string
	CompletionCode   string
	Participants     string
	Duration         string
	Reward           string
}

// DefaultStudyForm returns a form pre-filled with the stock values.
func DefaultStudyForm() StudyForm {
	return StudyForm{
		CompletionCode: DefaultCompletionCode,
		Participants:   strconv.Itoa(DefaultParticipants),
		Duration:       strconv.Itoa(DefaultDurationMinutes),
		Reward:         DefaultReward,
	}
}

// ParseStudyForm converts the form into a draft. With strict=false malformed numbers become 0.
func ParseStudyForm(form StudyForm, strict bool) (models.StudyDraft, error) {
	participants, err := ParseCount("participants", form.Participants, strict)
	if err != nil {
		return models.StudyDraft{}, err
	}
	duration, err := ParseCount("duration", form.Duration, strict)
	if err != nil {
		return models.StudyDraft{}, err
	}
	reward, err := ParseReward(form.Reward, strict)
	if err != nil {
		return models.StudyDraft{}, err
	}

	internal := form.InternalName
	if internal == "" {
		internal = form.Title
	}

	return models.StudyDraft{
		Title:            form.Title,
		InternalName:     internal,
		Description:      form.Description,
		ExternalStudyURL: form.ExternalStudyURL,
		CompletionCode:   form.CompletionCode,
		Participants:     participants,
		DurationMinutes:  duration,
		Reward:           reward,
	}, nil
}
