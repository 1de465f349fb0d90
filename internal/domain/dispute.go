package domain

import (
	"fmt"
	"strings"
)

// ResolveAction решение администратора по спору
type ResolveAction string

const (
	ResolveActionRelease ResolveAction = "release"
	ResolveActionRefund  ResolveAction = "refund"
	// ResolveActionPartial принимается на входе, но пока не поддерживается
	ResolveActionPartial ResolveAction = "partial"
)

// ParseResolveAction разбирает действие из внешнего ввода
func ParseResolveAction(raw string) (ResolveAction, error) {
	switch action := ResolveAction(strings.ToLower(strings.TrimSpace(raw))); action {
	case ResolveActionRelease, ResolveActionRefund, ResolveActionPartial:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResolveAction, raw)
	}
}

// Validate отклоняет действия, которые нельзя применить сейчас
func (a ResolveAction) Validate() error {
	switch a {
	case ResolveActionRelease, ResolveActionRefund:
		return nil
	case ResolveActionPartial:
		return ErrPartialResolutionUnsupported
	default:
		return ErrUnknownResolveAction
	}
}

// DisputeOutcome итоговый статус спора для действия.
// release означает, что претензия покупателя отклонена.
func (a ResolveAction) DisputeOutcome() DisputeStatus {
	if a == ResolveActionRelease {
		return DisputeStatusRejected
	}
	return DisputeStatusResolved
}

const maxResolutionLength = 255

// ResolutionTag короткая метка решения: действие и причина
func ResolutionTag(action ResolveAction, reason string) string {
	tag := string(action)
	if reason = strings.TrimSpace(reason); reason != "" {
		tag += ": " + reason
	}
	if runes := []rune(tag); len(runes) > maxResolutionLength {
		tag = string(runes[:maxResolutionLength])
	}
	return tag
}
