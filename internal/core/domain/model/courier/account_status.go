package courier

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// AccountStatus is the administrative state of a courier account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// ParseAccountStatus validates an account status received at the boundary.
func ParseAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(strings.ToLower(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the account status value.
func (s AccountStatus) Validate() error {
	switch s {
	case AccountActive, AccountInactive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("account status", fmt.Errorf("%q is not a valid account status", string(s)))
	}
}

func (s AccountStatus) String() string {
	return string(s)
}
