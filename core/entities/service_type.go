package entities

import (
	"fmt"
	"strings"
)

// ServiceType is the protocol used to interact with a running session.
type ServiceType int

const (
	ServiceTypeUnselected ServiceType = iota
	ServiceTypeSsh
	ServiceTypeVnc
	ServiceTypeXsdl
)

func (t ServiceType) String() string {
	switch t {
	case ServiceTypeUnselected:
		return "unselected"
	case ServiceTypeSsh:
		return "ssh"
	case ServiceTypeVnc:
		return "vnc"
	case ServiceTypeXsdl:
		return "xsdl"
	}
	return "unknown"
}

// IsSet reports whether a concrete service type has been chosen.
func (t ServiceType) IsSet() bool {
	return t != ServiceTypeUnselected
}

func ServiceTypeFromString(s string) (ServiceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unselected":
		return ServiceTypeUnselected, nil
	case "ssh":
		return ServiceTypeSsh, nil
	case "vnc":
		return ServiceTypeVnc, nil
	case "xsdl":
		return ServiceTypeXsdl, nil
	}
	return ServiceTypeUnselected, fmt.Errorf("unknown service type %q", s)
}
