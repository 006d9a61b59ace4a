package payload

import (
	"errors"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	hexBytes   = regexp.MustCompile(`^(0x|0X)?[0-9a-fA-F]+$`)
	hexDigest  = regexp.MustCompile(`^(0x|0X)?[0-9a-fA-F]{64}$`)
	policyHash = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

var products = []interface{}{"health", "health_lite", "life", "life_lite"}

var genders = []interface{}{"male", "female"}

// isAddress accepts an empty value so it can be paired with validation.Required.
var isAddress = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) {
		return errors.New("must be a 0x-prefixed 20 byte address")
	}
	return nil
})

var positiveAmount = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
})

var nonNegativeAmount = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
})

// ValidatePolicyID checks a path parameter holds a bytes32 policy id.
func ValidatePolicyID(id string) error {
	return validation.Validate(id, validation.Required, validation.Match(policyHash))
}
