/*
Copyright © 2023 the StormLab authors.
This file is part of StormLab.

StormLab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

StormLab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with StormLab.  If not, see <http://www.gnu.org/licenses/>.
*/

package stormlabutil

import (
	"fmt"
	"os"

	"github.com/hydromodel/stormlab"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()

	// Options are the configuration options available to StormLab.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies a configuration file holding default values
              for the other options.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "event",
			usage: `
              event selects the rainfall event to simulate, by id. The
              default is the first event in the project.`,
			shorthand:  "e",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "json",
			usage: `
              json emits the results as a JSON document instead of the
              summary table. Full hydrograph arrays are omitted.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "validate",
			usage: `
              validate checks the project without simulating. The exit
              status is 0 if the project is clean and 1 otherwise.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "plot",
			usage: `
              plot writes a PNG hydrograph for every node with outflow
              into the given directory.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(runCmd, validateCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "stormlab [project.json]",
	Short: "StormLab routes design storms through a drainage network.",
	Long: `StormLab simulates stormwater runoff and attenuation for a drainage
network of subcatchments, detention ponds, reaches and junctions under
NRCS synthetic 24-hour design storms.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return readConfigFile()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if cast.ToBool(Cfg.Get("validate")) {
			return validateProject(args[0])
		}
		return runProject(args[0])
	},
}

var runCmd = &cobra.Command{
	Use:   "run project.json",
	Short: "Run a rainfall event through a project.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProject(args[0])
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate project.json",
	Short: "Check a project for problems without simulating.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateProject(args[0])
	},
}

func runProject(path string) error {
	project, err := loadProject(path)
	if err != nil {
		return err
	}
	eventID := cast.ToString(Cfg.Get("event"))
	if eventID == "" {
		if len(project.Events) == 0 {
			return fmt.Errorf("project %q has no rainfall events", project.Name)
		}
		eventID = project.Events[0].ID
	}
	log.WithFields(log.Fields{
		"project": project.Name,
		"event":   eventID,
		"nodes":   len(project.Nodes),
	}).Info("running simulation")

	result, err := stormlab.RunSimulation(project, eventID)
	if err != nil {
		return err
	}
	if dir := cast.ToString(Cfg.Get("plot")); dir != "" {
		if err := plotHydrographs(dir, result); err != nil {
			return err
		}
	}
	if cast.ToBool(Cfg.Get("json")) {
		return writeJSON(os.Stdout, result)
	}
	return writeSummary(os.Stdout, project, result)
}

func validateProject(path string) error {
	project, err := loadProject(path)
	if err != nil {
		return err
	}
	problems := stormlab.ValidateProject(project)
	for _, p := range problems {
		fmt.Fprintln(os.Stdout, p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("project %q has %d problem(s)", project.Name, len(problems))
	}
	log.WithField("project", project.Name).Info("project is valid")
	return nil
}
