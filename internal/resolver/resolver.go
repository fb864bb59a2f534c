// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package resolver turns a possibly partial request into final license text,
// filling gaps from the cache and persisting the result for next time.
package resolver

import (
	"github.com/apex/log"

	"github.com/staranto/license/internal/cache"
	"github.com/staranto/license/internal/license"
	"github.com/staranto/license/internal/templates"
)

// Request is the caller's input. An empty string means the value was not
// supplied. Year is required; defaulting it is the caller's job.
type Request struct {
	Author string
	Year   string
	Kind   string
}

// Resolution is a completed request and the text it produced.
type Resolution struct {
	Author string `json:"author" yaml:"author"`
	Year   string `json:"year" yaml:"year"`
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
}

type Resolver struct {
	cache *cache.Cache
	store *templates.Store
}

func New(c *cache.Cache, s *templates.Store) *Resolver {
	return &Resolver{cache: c, store: s}
}

// Get resolves req and returns the license text.
func (r *Resolver) Get(req Request) (string, error) {
	res, err := r.Resolve(req)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Resolve fills, validates, renders, and then records author and kind in the
// cache. The cache is only written once everything else has succeeded. It
// panics if req.Year is empty.
func (r *Resolver) Resolve(req Request) (Resolution, error) {
	if req.Year == "" {
		panic("resolver: year must be supplied by the caller")
	}

	author, kind, err := r.cache.Read(req.Author, req.Kind)
	if err != nil {
		return Resolution{}, err
	}

	if err := license.Validate(author, req.Year, kind, r.store); err != nil {
		return Resolution{}, err
	}

	tmpl, err := r.store.Fetch(kind)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{
		Author: author,
		Year:   req.Year,
		Kind:   kind,
		Text:   templates.Render(tmpl, author, req.Year),
	}

	if err := r.cache.Write(author, kind); err != nil {
		return Resolution{}, err
	}

	log.WithFields(log.Fields{
		"author": author,
		"year":   req.Year,
		"kind":   kind,
	}).Debug("resolved license")

	return res, nil
}
