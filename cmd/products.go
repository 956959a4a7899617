package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var (
	productCategory string
	productSearch   string
	productLimit    int
	productOffset   int
	productOffline  bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	lowStockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Long: `List products from the catalog.

With --offline the last fetched listing is shown from the local snapshot
store instead of hitting the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newAPIClient()
		if err != nil {
			return err
		}
		snapshots, err := openSnapshots(cfg)
		if err != nil {
			return err
		}
		defer snapshots.Close()

		if productOffline {
			var products []internal.Product
			savedAt, err := snapshots.Load("products", &products)
			if err != nil {
				return fmt.Errorf("no offline snapshot available: %w", err)
			}
			fmt.Println(dimStyle.Render("Offline snapshot from " + savedAt.Local().Format("2006-01-02 15:04")))
			displayProducts(products)
			return nil
		}

		page, err := client.Products().List(cmd.Context(), internal.ProductFilter{
			Category: productCategory,
			Search:   productSearch,
			Limit:    productLimit,
			Offset:   productOffset,
		})
		if err != nil {
			return err
		}

		if err := snapshots.Save("products", page.Items); err != nil {
			internal.LogWarn("Failed to save snapshot: %v", err)
		}

		displayProducts(page.Items)
		if page.Total > len(page.Items) {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Showing %d of %d products", len(page.Items), page.Total)))
		}
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := client.Products().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render(p.Name))
		fmt.Printf("SKU:      %s\n", p.SKU)
		fmt.Printf("Category: %s\n", p.Category)
		fmt.Printf("Price:    %.2f\n", p.Price)
		fmt.Printf("Quantity: %d (reorder at %d)\n", p.Quantity, p.ReorderPoint)
		if p.Description != "" {
			fmt.Printf("\n%s\n", p.Description)
		}
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.Products().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		internal.PrintSuccess("Product deleted")
		return nil
	},
}

var productsLowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List products at or below their reorder point",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Products().LowStock(cmd.Context())
		if err != nil {
			return err
		}
		displayProducts(page.Items)
		return nil
	},
}

var (
	productSKU          string
	productName         string
	productDesc         string
	productPrice        float64
	productQuantity     int
	productReorderPoint int
)

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		if productSKU == "" || productName == "" {
			return fmt.Errorf("--sku and --name are required")
		}
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		created, err := client.Products().Create(cmd.Context(), &internal.Product{
			SKU:          productSKU,
			Name:         productName,
			Description:  productDesc,
			Category:     productCategory,
			Price:        productPrice,
			Quantity:     productQuantity,
			ReorderPoint: productReorderPoint,
		})
		if err != nil {
			return err
		}
		internal.PrintSuccess("Created " + created.SKU + " (" + created.ID + ")")
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Long: `Update a product. Only the fields given as flags change; the rest keep
their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := client.Products().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("name") {
			p.Name = productName
		}
		if cmd.Flags().Changed("description") {
			p.Description = productDesc
		}
		if cmd.Flags().Changed("category") {
			p.Category = productCategory
		}
		if cmd.Flags().Changed("price") {
			p.Price = productPrice
		}
		if cmd.Flags().Changed("quantity") {
			p.Quantity = productQuantity
		}
		if cmd.Flags().Changed("reorder-point") {
			p.ReorderPoint = productReorderPoint
		}
		updated, err := client.Products().Update(cmd.Context(), args[0], p)
		if err != nil {
			return err
		}
		internal.PrintSuccess("Updated " + updated.SKU)
		return nil
	},
}

var productsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import products from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		var result *internal.ImportResult
		err = internal.ShowProgress(cmd.Context(), "Uploading "+filepath.Base(args[0]), func() error {
			var uploadErr error
			result, uploadErr = client.Products().ImportCSV(cmd.Context(), filepath.Base(args[0]), f)
			return uploadErr
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Imported %d product(s), skipped %d", result.Imported, result.Skipped))
		for _, msg := range result.Errors {
			internal.PrintWarning(msg)
		}
		return nil
	},
}

func displayProducts(products []internal.Product) {
	if len(products) == 0 {
		fmt.Println(headerStyle.Render("No products found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("Found %d product(s)", len(products)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("SKU")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Price")+"\t"+titleStyle.Render("Qty")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, p := range products {
		name := p.Name
		if name == "" {
			name = "Untitled"
		}
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		qty := countStyle.Render(strconv.Itoa(p.Quantity))
		if p.ReorderPoint > 0 && p.Quantity <= p.ReorderPoint {
			qty = lowStockStyle.Render(strconv.Itoa(p.Quantity))
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(p.SKU),
			name,
			dimStyle.Render(fmt.Sprintf("%.2f", p.Price)),
			qty,
		)
	}

	_ = w.Flush()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsLowStockCmd)
	productsCmd.AddCommand(productsImportCmd)

	productsCreateCmd.Flags().StringVar(&productSKU, "sku", "", "Stock keeping unit")
	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productDesc, "description", "", "Description")
		c.Flags().StringVar(&productCategory, "category", "", "Category")
		c.Flags().Float64Var(&productPrice, "price", 0, "Unit price")
		c.Flags().IntVar(&productQuantity, "quantity", 0, "Quantity on hand")
		c.Flags().IntVar(&productReorderPoint, "reorder-point", 0, "Reorder threshold")
	}

	productsListCmd.Flags().StringVar(&productCategory, "category", "", "Filter by category")
	productsListCmd.Flags().StringVar(&productSearch, "search", "", "Filter by search term")
	productsListCmd.Flags().IntVar(&productLimit, "limit", 0, "Maximum number of products to return")
	productsListCmd.Flags().IntVar(&productOffset, "offset", 0, "Offset into the listing")
	productsListCmd.Flags().BoolVar(&productOffline, "offline", false, "Show the last fetched listing without contacting the server")
}
