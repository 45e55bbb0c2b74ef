package domain

import "regexp"

var trainNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateTrainName checks that name is usable as a storage key: 1 to 64
// ASCII letters, digits, '_' or '-'.
func ValidateTrainName(name string) error {
	if !trainNamePattern.MatchString(name) {
		return InvalidArgument("train.name", "%q must match %s", name, trainNamePattern.String())
	}
	return nil
}
