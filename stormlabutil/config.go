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
)

// readConfigFile merges an optional configuration file into Cfg. Flags set
// on the command line keep precedence over file values.
func readConfigFile() error {
	path := cast.ToString(Cfg.Get("config"))
	if path == "" {
		return nil
	}
	path = os.ExpandEnv(path)
	Cfg.SetConfigFile(path)
	if err := Cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("reading configuration file %s: %w", path, err)
	}
	log.WithField("file", Cfg.ConfigFileUsed()).Info("read configuration")
	return nil
}

// loadProject reads and decodes a native project file, expanding any
// environment variables in the path.
func loadProject(path string) (*stormlab.Project, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("project file %s: %w", path, err)
	}
	project, err := stormlab.LoadProject(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"project": project.Name,
		"nodes":   len(project.Nodes),
		"links":   len(project.Links),
		"events":  len(project.Events),
	}).Info("loaded project")
	return project, nil
}
