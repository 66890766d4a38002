package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mypl/debugs"
	"github.com/reusee/mypl/myplconfigs"
)

type Module struct {
	dscope.Module
	Configs myplconfigs.Module
	Debugs  debugs.Module
}
