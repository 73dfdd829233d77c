package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue       = "true"
	toggleFalseCanonicalValue      = "false"
	toggleParseErrorTemplate       = "invalid toggle value %q (expected yes or no)"
	toggleTruePlaceholderConstant  = "<YES|no>"
	toggleFalsePlaceholderConstant = "<yes|NO>"
	toggleTypeNameConstant         = "bool"
	longFlagPrefixConstant         = "--"
	shortFlagPrefixConstant        = "-"
	flagValueSeparatorConstant     = "="
)

var (
	toggleLiterals = map[string]bool{
		"true": true, "yes": true, "on": true, "1": true, "t": true, "y": true,
		"false": false, "no": false, "off": false, "0": false, "f": false, "n": false,
	}

	toggleRegistryMutex sync.RWMutex
	toggleRegistry      = map[string]struct{}{}
)

// AddToggleFlag registers a boolean flag that accepts yes/no style values either inline or as the following argument.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	flagSet.VarP(newToggleValue(defaultValue, target), name, shorthand, usage)
	registeredFlag := flagSet.Lookup(name)
	registeredFlag.NoOptDefVal = toggleTrueCanonicalValue
	registeredFlag.Usage = formatToggleUsage(usage, defaultValue)

	toggleRegistryMutex.Lock()
	defer toggleRegistryMutex.Unlock()
	toggleRegistry[longFlagPrefixConstant+name] = struct{}{}
	if len(shorthand) > 0 {
		toggleRegistry[shortFlagPrefixConstant+shorthand] = struct{}{}
	}
}

// NormalizeToggleArguments joins "--flag value" pairs of registered toggle flags into "--flag=value".
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for argumentIndex := 0; argumentIndex < len(arguments); argumentIndex++ {
		current := arguments[argumentIndex]
		if current == longFlagPrefixConstant {
			return append(normalized, arguments[argumentIndex:]...)
		}

		hasNext := argumentIndex+1 < len(arguments)
		if hasNext && isRegisteredToggle(current) && isToggleLiteral(arguments[argumentIndex+1]) {
			normalized = append(normalized, current+flagValueSeparatorConstant+arguments[argumentIndex+1])
			argumentIndex++
			continue
		}
		normalized = append(normalized, current)
	}
	return normalized
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleTruePlaceholderConstant
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmedDescription)
}

func isRegisteredToggle(argument string) bool {
	if strings.Contains(argument, flagValueSeparatorConstant) {
		return false
	}
	toggleRegistryMutex.RLock()
	defer toggleRegistryMutex.RUnlock()
	_, registered := toggleRegistry[argument]
	return registered
}

// isToggleLiteral keeps "--color init" from swallowing the subcommand name.
func isToggleLiteral(argument string) bool {
	_, known := toggleLiterals[strings.ToLower(strings.TrimSpace(argument))]
	return known
}

type toggleValue struct {
	currentValue bool
	target       *bool
}

func newToggleValue(defaultValue bool, target *bool) *toggleValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleValue{currentValue: defaultValue, target: target}
}

func (value *toggleValue) Set(rawValue string) error {
	trimmedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValue
	}

	parsedValue, known := toggleLiterals[trimmedValue]
	if !known {
		return fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}
	return nil
}

func (value *toggleValue) String() string {
	if value != nil && value.currentValue {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleValue) Type() string {
	return toggleTypeNameConstant
}
