package app

import (
	"github.com/vk/gluebind/internal/callable"
	"github.com/vk/gluebind/modules/belly"
)

// coreModules is the list of glue modules compiled into the gluebind
// binary.
var coreModules = []callable.Module{
	&belly.Module{},
}
