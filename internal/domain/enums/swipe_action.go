package enums

import (
	"fmt"
	"strings"
)

type SwipeAction string

const (
	SwipeActionLike SwipeAction = "LIKE"
	SwipeActionPass SwipeAction = "PASS"
)

func ParseSwipeAction(value string) (SwipeAction, error) {
	switch SwipeAction(strings.ToUpper(strings.TrimSpace(value))) {
	case SwipeActionLike:
		return SwipeActionLike, nil
	case SwipeActionPass:
		return SwipeActionPass, nil
	default:
		return "", fmt.Errorf("unknown swipe action %q", value)
	}
}
