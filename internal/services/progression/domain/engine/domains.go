package engine

import (
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/application"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/cotr"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/courtcentre"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/courtdocument"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/defence"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/fee"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/groupcase"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/hearing"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/material"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/notification"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/nows"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/prosecutioncase"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/referral"
)

// Domain bundles the hooks every aggregate package exports. Adding an
// aggregate means adding one entry to Domains.
type Domain struct {
	AggregateType    string
	Binding          func() aggregate.Binding
	RegisterCommands func(*command.Registry) error
	RegisterEvents   func(*event.Registry) error
}

// Domains returns the authoritative list of aggregate registrations.
func Domains() []Domain {
	return []Domain{
		{prosecutioncase.AggregateType, prosecutioncase.Binding, prosecutioncase.RegisterCommands, prosecutioncase.RegisterEvents},
		{groupcase.AggregateType, groupcase.Binding, groupcase.RegisterCommands, groupcase.RegisterEvents},
		{cotr.AggregateType, cotr.Binding, cotr.RegisterCommands, cotr.RegisterEvents},
		{application.AggregateType, application.Binding, application.RegisterCommands, application.RegisterEvents},
		{courtcentre.AggregateType, courtcentre.Binding, courtcentre.RegisterCommands, courtcentre.RegisterEvents},
		{hearing.AggregateType, hearing.Binding, hearing.RegisterCommands, hearing.RegisterEvents},
		{fee.AggregateType, fee.Binding, fee.RegisterCommands, fee.RegisterEvents},
		{defence.AggregateType, defence.Binding, defence.RegisterCommands, defence.RegisterEvents},
		{material.AggregateType, material.Binding, material.RegisterCommands, material.RegisterEvents},
		{notification.AggregateType, notification.Binding, notification.RegisterCommands, notification.RegisterEvents},
		{referral.AggregateType, referral.Binding, referral.RegisterCommands, referral.RegisterEvents},
		{nows.AggregateType, nows.Binding, nows.RegisterCommands, nows.RegisterEvents},
		{courtdocument.AggregateType, courtdocument.Binding, courtdocument.RegisterCommands, courtdocument.RegisterEvents},
	}
}
