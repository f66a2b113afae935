// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/caldate"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// config represents the optional YAML configuration file, for example:
//
//	layout: long
//	logging:
//	  level: 3
//	  format: text
//	dates:
//	  settlement: 15-Feb-2024
//	  maturity:
//	    day: 15
//	    month: Feb
//	    year: 2029
//
// Named dates are referred to on the command line as @settlement etc.
type config struct {
	Layout  string                  `yaml:"layout"`
	Logging *cmdutil.LoggingConfig  `yaml:"logging"`
	Dates   map[string]caldate.Date `yaml:"dates"`
}

type session struct {
	cfg    config
	layout caldate.Layout
	logger *cmdutil.Logger
}

// setup reads the configuration file, if any, and creates the logger
// and output layout for a command. Settings in the configuration file
// override the logging flags, the layout flag overrides the
// configuration file.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, *session, error) {
	s := &session{}
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &s.cfg); err != nil {
			return ctx, nil, err
		}
	}
	lc := cf.LoggingConfig()
	if s.cfg.Logging != nil {
		lc = *s.cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	s.logger = logger
	layout := s.cfg.Layout
	if len(cf.Layout) > 0 {
		layout = cf.Layout
	}
	if s.layout, err = caldate.ParseLayout(layout); err != nil {
		logger.Close()
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("configured", "config", cf.Config, "layout", s.layout.String(), "dates", len(s.cfg.Dates))
	return ctx, s, nil
}

func (s *session) close() error {
	return s.logger.Close()
}

// date returns the date named by arg, either a date in one of the
// formats accepted by caldate.ParseDate or @name for a date defined
// in the configuration file.
func (s *session) date(arg string) (caldate.Date, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		d, ok := s.cfg.Dates[name]
		if !ok {
			return caldate.Date{}, fmt.Errorf("date %q is not defined in the configuration file", name)
		}
		return d, nil
	}
	d, err := caldate.ParseDate(arg)
	if err != nil {
		return caldate.Date{}, errors.Annotate(arg, err)
	}
	return d, nil
}

func (s *session) dates(args ...string) ([]caldate.Date, error) {
	dates := make([]caldate.Date, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		d, err := s.date(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	return dates, errs.Err()
}
