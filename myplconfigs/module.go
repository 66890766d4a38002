package myplconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mypl/session"
)

type Module struct {
	dscope.Module
	Session session.Module
}
