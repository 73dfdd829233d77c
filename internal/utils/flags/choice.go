package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderTemplate   = "<%s>"
	choiceSeparatorLiteral      = "|"
	choiceUsageEmptyTemplate    = "`%s`"
	choiceUsageFullTemplate     = "`%s` %s"
	choiceUnsupportedTemplate   = "unsupported %s %q (expected one of %s)"
	choiceListSeparatorConstant = ", "
)

// UnsupportedChoiceError reports a flag or configuration value outside of its allowed set.
type UnsupportedChoiceError struct {
	Subject string
	Value   string
	Choices []string
}

func (unsupportedChoiceError UnsupportedChoiceError) Error() string {
	return fmt.Sprintf(choiceUnsupportedTemplate, unsupportedChoiceError.Subject, unsupportedChoiceError.Value, strings.Join(unsupportedChoiceError.Choices, choiceListSeparatorConstant))
}

// ParseChoice returns the canonical spelling of value when it matches one of choices, ignoring case and surrounding whitespace.
func ParseChoice(subject string, value string, choices []string) (string, error) {
	normalizedValue := normalizeChoice(value)
	for _, choice := range uniqueChoices(choices) {
		if normalizeChoice(choice) == normalizedValue {
			return choice, nil
		}
	}
	return "", UnsupportedChoiceError{Subject: subject, Value: value, Choices: uniqueChoices(choices)}
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := normalizeChoice(defaultChoice)
	displayChoices := uniqueChoices(choices)
	for choiceIndex, choice := range displayChoices {
		if len(normalizedDefault) > 0 && normalizeChoice(choice) == normalizedDefault {
			displayChoices[choiceIndex] = strings.ToUpper(choice)
		}
	}

	placeholder := fmt.Sprintf(choicePlaceholderTemplate, strings.Join(displayChoices, choiceSeparatorLiteral))
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

func uniqueChoices(choices []string) []string {
	unique := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, duplicate := seen[normalizedChoice]; duplicate {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		unique = append(unique, trimmedChoice)
	}
	return unique
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
