package configs

import "reflect"

// Configurable types may be set by init scripts. ConfigExpr is the name of
// the script binding that holds the value.
type Configurable interface {
	ConfigExpr() string
}

var configurableType = reflect.TypeFor[Configurable]()
