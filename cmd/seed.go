package cmd

import (
	"context"
	"errors"
	"fmt"

	"bookmychair/models"
	"bookmychair/services/apperr"
	"bookmychair/services/chair"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var demoChairs = []models.NewChairInput{
	{ChairID: "C-101", ChairName: "Aeron", ChairType: "Ergonomic", ChairLocation: "Floor 1 - East", ChairFeatures: []string{"Lumbar support", "Adjustable arms"}},
	{ChairID: "C-102", ChairName: "Leap", ChairType: "Ergonomic", ChairLocation: "Floor 1 - West", ChairFeatures: []string{"Lumbar support"}},
	{ChairID: "C-201", ChairName: "Lounge", ChairType: "BeanBag", ChairLocation: "Floor 2 - Breakout", ChairFeatures: []string{}},
	{ChairID: "C-202", ChairName: "Standing Stool", ChairType: "Stool", ChairLocation: "Floor 2 - Hot desks", ChairFeatures: []string{"Height adjustable"}},
	{ChairID: "C-301", ChairName: "Executive", ChairType: "Executive", ChairLocation: "Floor 3 - Board room", ChairFeatures: []string{"Leather", "Headrest"}, ChairStatus: models.ChairMaintenance},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo chairs into the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, err := openStores(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close(ctx) }()

		svc := &chair.DefaultChairService{Repo: st.Chairs, Logger: logger}
		added, err := seedChairs(ctx, svc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d of %d chairs\n", added, len(demoChairs))
		return nil
	},
}

// seedChairs adds the demo chairs, skipping codes that already exist.
func seedChairs(ctx context.Context, svc chair.ChairService) (int, error) {
	added := 0
	for _, in := range demoChairs {
		_, err := svc.AddChair(ctx, in)
		var verr *apperr.ValidationError
		switch {
		case err == nil:
			added++
		case errors.As(err, &verr):
			logger.Info("skipping chair", zap.String("chairId", in.ChairID), zap.String("reason", verr.Message))
		default:
			return added, err
		}
	}
	return added, nil
}
