package cmd

import (
	"github.com/votedapp/sponsorvote/common/types"
)

// addressValue is a pflag.Value of a 0x prefixed address.
type addressValue struct {
	addr *types.Address
}

func (a addressValue) String() string {
	if a.addr == nil || a.addr.IsEmpty() {
		return ""
	}
	return a.addr.String()
}

func (a addressValue) Set(s string) error {
	return a.addr.UnmarshalText([]byte(s))
}

func (a addressValue) Type() string {
	return "address"
}
