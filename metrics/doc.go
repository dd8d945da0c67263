// This file is part of chipset.
//
// chipset is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chipset is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chipset.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics exposes an HTTP server of live runtime statistics while a
// machine is running, built on "github.com/go-echarts/statsview". The
// server is only available when the statsview build tag is present; without
// it, Launch reports that no server is available.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package metrics
