package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/console"
	"github.com/marketdesk/sellerctl/internal/utils"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage your product catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteProducts, appCtx.screens.ProductsList)
		},
	}
	cmd.AddCommand(productAddCmd(), productUpdateCmd(), productDeleteCmd())
	return cmd
}

func productAddCmd() *cobra.Command {
	var product api.Product
	var tagline string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			product.Tagline = splitTags(tagline)
			return appCtx.guard.Run(cmd.Context(), console.RouteProducts, func(ctx context.Context, sc console.SessionContext) error {
				return appCtx.screens.ProductAdd(ctx, sc, product)
			})
		},
	}

	cmd.Flags().StringVar(&product.Name, "name", "", "product name")
	cmd.Flags().StringVar(&product.Slug, "slug", "", "URL slug")
	cmd.Flags().StringVar(&product.ShortDescription, "short-description", "", "short description")
	cmd.Flags().StringVar(&product.Description, "description", "", "full description")
	cmd.Flags().StringVar(&product.Image, "image", "", "image URL")
	cmd.Flags().Float64Var(&product.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&product.Stock, "stock", 0, "stock on hand")
	cmd.Flags().StringVar(&product.SKU, "sku", "", "SKU")
	cmd.Flags().StringVar(&product.Category, "category", "", "category")
	cmd.Flags().StringVar(&product.Subcategory, "subcategory", "", "subcategory")
	cmd.Flags().BoolVar(&product.IsAvailable, "available", true, "available for sale")
	cmd.Flags().BoolVar(&product.IsFeatured, "featured", false, "featured product")
	cmd.Flags().StringVar(&tagline, "tags", "", "comma-separated tags")
	cmd.Flags().Float64Var(&product.Discount, "discount", 0, "discount percentage")
	cmd.Flags().Int64Var(&product.BrandID, "brand", 0, "brand id")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func productUpdateCmd() *cobra.Command {
	var tagline string

	cmd := &cobra.Command{
		Use:   "update [product-id]",
		Short: "Edit a product; only the flags you pass are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			var update api.ProductUpdate
			flagToField := map[string]func(string) error{
				"name":        setString(&update.Name),
				"description": setString(&update.Description),
				"image":       setString(&update.Image),
				"category":    setString(&update.Category),
				"subcategory": setString(&update.Subcategory),
				"price":       setFloat(&update.Price),
				"discount":    setFloat(&update.Discount),
				"stock":       setInt(&update.Stock),
				"available":   setBool(&update.IsAvailable),
				"featured":    setBool(&update.IsFeatured),
			}
			var parseErr error
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if setter, ok := flagToField[f.Name]; ok && parseErr == nil {
					parseErr = setter(f.Value.String())
				}
				if f.Name == "tags" {
					update.Tagline = splitTags(tagline)
				}
			})
			if parseErr != nil {
				return parseErr
			}

			return appCtx.guard.Run(cmd.Context(), console.RouteProducts, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.ProductUpdate(ctx, productID, update)
			})
		},
	}

	cmd.Flags().String("name", "", "product name")
	cmd.Flags().String("description", "", "full description")
	cmd.Flags().String("image", "", "image URL")
	cmd.Flags().Float64("price", 0, "unit price")
	cmd.Flags().Int("stock", 0, "stock on hand")
	cmd.Flags().String("category", "", "category")
	cmd.Flags().String("subcategory", "", "subcategory")
	cmd.Flags().Bool("available", true, "available for sale")
	cmd.Flags().Bool("featured", false, "featured product")
	cmd.Flags().StringVar(&tagline, "tags", "", "comma-separated tags")
	cmd.Flags().Float64("discount", 0, "discount percentage")

	return cmd
}

func productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [product-id]",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return appCtx.guard.Run(cmd.Context(), console.RouteProducts, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.ProductDelete(ctx, productID)
			})
		},
	}
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func setString(dst **string) func(string) error {
	return func(v string) error {
		*dst = utils.Ptr(v)
		return nil
	}
}

func setFloat(dst **float64) func(string) error {
	return func(v string) error {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = utils.Ptr(parsed)
		return nil
	}
}

func setInt(dst **int) func(string) error {
	return func(v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = utils.Ptr(parsed)
		return nil
	}
}

func setBool(dst **bool) func(string) error {
	return func(v string) error {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = utils.Ptr(parsed)
		return nil
	}
}
