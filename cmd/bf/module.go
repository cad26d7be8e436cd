package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/sources"
	"github.com/reusee/bf/terms"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs bfconfigs.Module
	Sources sources.Module
	Terms   terms.Module
}
