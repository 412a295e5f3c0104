package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/export"
)

// CLI holds the maintenance service the subcommands run against. When
// Maintenance is nil, Connect opens it before the first command runs.
type CLI struct {
	Maintenance domain.MaintenanceService
	Connect     func(cmd *cobra.Command) (domain.MaintenanceService, error)
}

var errNoDatabase = errors.New("no database connection configured")

// Command builds the kiranactl command tree.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "kiranactl",
		Short:         "Catalog maintenance for the kirana database",
		Long:          "kiranactl fixes up shop and product data in place.\nEvery command is idempotent and safe to re-run.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.Maintenance != nil {
				return nil
			}
			if c.Connect == nil {
				return errNoDatabase
			}
			m, err := c.Connect(cmd)
			if err != nil {
				return err
			}
			c.Maintenance = m
			return nil
		},
	}

	root.AddCommand(
		c.openAllShopsCmd(),
		c.setShopStatusCmd(),
		c.findDuplicatesCmd(),
		c.setCoordsCmd(),
		c.listShopsCmd(),
		c.exportProductsCmd(),
	)
	return root
}

func (c *CLI) openAllShopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-all-shops",
		Short: "Set every shop open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := c.Maintenance.OpenAllShops(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d shop(s) opened\n", changed)
			return nil
		},
	}
}

func (c *CLI) setShopStatusCmd() *cobra.Command {
	var (
		name string
		open bool
	)
	cmd := &cobra.Command{
		Use:   "set-shop-status",
		Short: "Open or close the shops whose name contains --name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := c.Maintenance.SetShopStatus(cmd.Context(), name, open)
			if err != nil {
				return err
			}
			state := "closed"
			if open {
				state = "open"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d shop(s) matching %q set %s\n", changed, name, state)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "case-insensitive substring of the shop name")
	cmd.Flags().BoolVar(&open, "open", true, "whether the shops should be open")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) findDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-duplicates",
		Short: "List shops sharing a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := c.Maintenance.FindDuplicateShops(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "no duplicate shop names")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOUNT\tIDS")
			for _, g := range groups {
				fmt.Fprintf(tw, "%s\t%d\t%v\n", g.Name, len(g.ShopIDs), g.ShopIDs)
			}
			return tw.Flush()
		},
	}
}

func (c *CLI) setCoordsCmd() *cobra.Command {
	var (
		name          string
		lat, lng, jit float64
	)
	cmd := &cobra.Command{
		Use:   "set-coords",
		Short: "Set coordinates on the shops whose name contains --name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shops, err := c.Maintenance.SetShopCoordinates(cmd.Context(), name, domain.Coordinates{Lat: lat, Lng: lng}, jit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d shop(s) updated\n", len(shops))
			return printShops(cmd.OutOrStdout(), shops)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "case-insensitive substring of the shop name")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude in decimal degrees")
	cmd.Flags().Float64Var(&jit, "jitter", 0, "maximum random offset per axis in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func (c *CLI) listShopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-shops",
		Short: "List every shop with its coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shops, err := c.Maintenance.ListAllShops(cmd.Context())
			if err != nil {
				return err
			}
			return printShops(cmd.OutOrStdout(), shops)
		},
	}
}

func printShops(w io.Writer, shops []domain.Shop) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tOPEN\tLAT\tLNG")
	for _, s := range shops {
		lat, lng := "-", "-"
		if s.Coordinates != nil {
			lat = strconv.FormatFloat(s.Coordinates.Lat, 'f', 6, 64)
			lng = strconv.FormatFloat(s.Coordinates.Lng, 'f', 6, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\n", s.ID, s.Name, s.City, s.IsOpen, lat, lng)
	}
	return tw.Flush()
}

func (c *CLI) exportProductsCmd() *cobra.Command {
	var shopArg, out string
	cmd := &cobra.Command{
		Use:   "export-products",
		Short: "Write a shop's catalog to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shopID, err := uuid.Parse(shopArg)
			if err != nil {
				return fmt.Errorf("invalid --shop %q: %w", shopArg, err)
			}

			shop, products, err := c.Maintenance.ShopCatalog(cmd.Context(), shopID)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = export.Filename(shop)
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := export.WriteProducts(f, shop, products); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d product(s) of %s written to %s\n", len(products), shop.Name, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&shopArg, "shop", "", "shop id")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to products-<id>.xlsx)")
	_ = cmd.MarkFlagRequired("shop")
	return cmd
}
