// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/license/internal/cache"
	"github.com/staranto/license/internal/config"
	"github.com/staranto/license/internal/templates"
)

// Meta is what every command needs beyond its own flags. It is built once
// in InitApp and stored in each command's Metadata.
type Meta struct {
	Args   []string
	Config config.Type
	Store  *templates.Store
	Cache  *cache.Cache
}
