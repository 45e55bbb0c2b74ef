package cli

import (
	"strconv"
	"train-consist-service/internal/domain"
)

// parseIndex reads a wagon index argument.
func parseIndex(what, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.InvalidArgument("parse "+what, "%q is not an integer", s)
	}
	return i, nil
}
