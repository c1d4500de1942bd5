package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evroute/config"
	"github.com/kilianp07/evroute/core/geo"
	"github.com/kilianp07/evroute/core/model"
	"github.com/kilianp07/evroute/core/planner"
	"github.com/kilianp07/evroute/core/search"
	"github.com/kilianp07/evroute/infra/stations"
)

var (
	planFromLat    float64
	planFromLon    float64
	planTo         string
	planSoC        float64
	planBattery    float64
	planConsume    float64
	planElevFactor float64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a single route and print it as JSON",
	RunE:  planRoute,
}

func init() {
	planCmd.Flags().Float64Var(&planFromLat, "from-lat", 0, "origin latitude")
	planCmd.Flags().Float64Var(&planFromLon, "from-lon", 0, "origin longitude")
	planCmd.Flags().StringVar(&planTo, "to", "", "destination search query")
	planCmd.Flags().Float64Var(&planSoC, "soc", 100, "current state of charge (percent)")
	planCmd.Flags().Float64Var(&planBattery, "battery-kwh", 75, "battery capacity in kWh")
	planCmd.Flags().Float64Var(&planConsume, "consumption", 0.18, "base consumption in kWh per km")
	planCmd.Flags().Float64Var(&planElevFactor, "elevation-factor", 0, "extra kWh per 10 m of elevation gain")
	_ = planCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(planCmd)
}

func planRoute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	resolver := search.NewStaticResolver(search.DefaultDestinations())
	matches := resolver.Search(planTo)
	if len(matches) == 0 {
		return fmt.Errorf("no destination matches %q", planTo)
	}

	snapshot, err := stations.NewFileSource(cfg.Stations.File).Snapshot()
	if err != nil {
		return err
	}

	route, err := planner.NewAssembler(cfg.Planner).BuildRoute(planner.Request{
		Origin:      geo.Coordinate{Latitude: planFromLat, Longitude: planFromLon},
		Destination: matches[0],
		Profile: model.VehicleEnergyProfile{
			BatteryKWh:         planBattery,
			ConsumptionKWhKm:   planConsume,
			ElevationKWhPer10m: planElevFactor,
		},
		CurrentSoC: planSoC,
		Stations:   snapshot,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(route)
}
