// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package modelregistry finds model records and enumerations by service and name.
package modelregistry

import (
	"strings"

	pie_ "github.com/elliotchance/pie/v2"
	"github.com/pkg/errors"

	"playfab-models-go/pkg/authenticationmodels"
	"playfab-models-go/pkg/clientmodels"
	"playfab-models-go/pkg/cloudscriptmodels"
	"playfab-models-go/pkg/datamodels"
	"playfab-models-go/pkg/experimentationmodels"
	"playfab-models-go/pkg/groupsmodels"
	"playfab-models-go/pkg/insightsmodels"
	"playfab-models-go/pkg/jsonutil"
	"playfab-models-go/pkg/matchmakermodels"
	"playfab-models-go/pkg/multiplayermodels"
	"playfab-models-go/pkg/profilesmodels"
)

var (
	ErrUnknownService = errors.New("unknown service")
	ErrUnknownType    = errors.New("unknown type")
	ErrUnknownEnum    = errors.New("unknown enum")
)

// Registry is a read-only set of model package indexes keyed by service.
type Registry struct {
	indexes map[string]*jsonutil.Index
}

func NewRegistry(indexes ...*jsonutil.Index) *Registry {
	r := &Registry{indexes: make(map[string]*jsonutil.Index, len(indexes))}
	for _, idx := range indexes {
		r.indexes[idx.Service] = idx
	}

	return r
}

var defaultRegistry = NewRegistry(
	clientmodels.Index(),
	authenticationmodels.Index(),
	cloudscriptmodels.Index(),
	datamodels.Index(),
	experimentationmodels.Index(),
	groupsmodels.Index(),
	insightsmodels.Index(),
	matchmakermodels.Index(),
	multiplayermodels.Index(),
	profilesmodels.Index(),
)

// Default returns the registry of every model package in this module.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) index(service string) (*jsonutil.Index, error) {
	if idx, ok := r.indexes[strings.ToLower(service)]; ok {
		return idx, nil
	}

	return nil, errors.Wrap(ErrUnknownService, service)
}

// New returns a fresh pointer to the record called name.
// Names are matched exactly first, then ignoring case.
func (r *Registry) New(service, name string) (any, error) {
	idx, err := r.index(service)
	if err != nil {
		return nil, err
	}
	factory, ok := lookup(idx.Types, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%s in %s", name, service)
	}

	return factory(), nil
}

func (r *Registry) Enum(service, name string) (jsonutil.EnumTable, error) {
	idx, err := r.index(service)
	if err != nil {
		return nil, err
	}
	table, ok := lookup(idx.Enums, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEnum, "%s in %s", name, service)
	}

	return table, nil
}

// Services returns the service names in sorted order.
func (r *Registry) Services() []string {
	return pie_.Sort(pie_.Keys(r.indexes))
}

// Types returns the record names of service in sorted order.
func (r *Registry) Types(service string) ([]string, error) {
	idx, err := r.index(service)
	if err != nil {
		return nil, err
	}

	return pie_.Sort(pie_.Keys(idx.Types)), nil
}

// Enums returns the enumeration names of service in sorted order.
func (r *Registry) Enums(service string) ([]string, error) {
	idx, err := r.index(service)
	if err != nil {
		return nil, err
	}

	return pie_.Sort(pie_.Keys(idx.Enums)), nil
}

// Find returns the services defining a record called name.
func (r *Registry) Find(name string) []string {
	return pie_.Filter(r.Services(), func(service string) bool {
		_, ok := lookup(r.indexes[service].Types, name)

		return ok
	})
}

func lookup[V any](m map[string]V, name string) (V, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	for key, v := range m {
		if strings.EqualFold(key, name) {
			return v, true
		}
	}

	var zero V

	return zero, false
}

func New(service, name string) (any, error) {
	return defaultRegistry.New(service, name)
}

func Enum(service, name string) (jsonutil.EnumTable, error) {
	return defaultRegistry.Enum(service, name)
}

func Services() []string {
	return defaultRegistry.Services()
}

func Types(service string) ([]string, error) {
	return defaultRegistry.Types(service)
}
