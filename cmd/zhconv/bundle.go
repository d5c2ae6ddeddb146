package main

import (
	"github.com/calvinalkan/zhconv/internal/bundledict"
	"github.com/calvinalkan/zhconv/pkg/dict"
)

func loadEmbeddedBundle() (*dict.Bundle, []dict.Warning, error) {
	return bundledict.Load()
}
