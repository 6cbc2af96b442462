package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a positive integer path parameter.
func ParseID(raw string, name string) (uint, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(v), nil
}
