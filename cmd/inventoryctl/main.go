// inventoryctl is a terminal front end for the inventory page: it shows the
// current stock and history, and can submit a stock addition through the
// same view flow the dashboard UI uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"cyltrack-rest-api/internal/client"
)

// stdoutNotifier prints transient notifications to the terminal.
type stdoutNotifier struct{}

func (stdoutNotifier) Success(message string) { fmt.Printf("OK: %s\n", message) }
func (stdoutNotifier) Error(message string)   { fmt.Printf("ERROR: %s\n", message) }

func main() {
	addr := flag.String("addr", envOr("CYLTRACK_ADDR", "http://localhost:8080"), "API base address")
	token := flag.String("token", os.Getenv("CYLTRACK_TOKEN"), "session token")
	add := flag.Bool("add", false, "add a stock entry")
	quantity := flag.String("quantity", "", "quantity for -add")
	date := flag.String("date", "", "date added for -add (YYYY-MM-DD, default today)")
	flag.Parse()

	if *token == "" {
		log.Fatal("session token required (set CYLTRACK_TOKEN or pass -token)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*addr, *token)
	view := client.NewInventoryView(api, stdoutNotifier{})
	view.Activate(ctx)

	if *add {
		view.OpenForm()
		view.SetQuantity(*quantity)
		if *date != "" {
			view.SetDateAdded(*date)
		}
		view.Submit(ctx)

		if errs := view.Errors(); errs != (client.FormErrors{}) {
			if errs.Quantity != "" {
				fmt.Printf("quantity: %s\n", errs.Quantity)
			}
			if errs.DateAdded != "" {
				fmt.Printf("date: %s\n", errs.DateAdded)
			}
			os.Exit(1)
		}
	}

	render(view)
}

// render prints the stock card and history table.
func render(view *client.InventoryView) {
	fmt.Println("Inventory Management")
	fmt.Printf("Current Gas Cylinders Stock: %d\n\n", view.CurrentStock())

	fmt.Println("Inventory History")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Date Added\tQuantity")
	for _, entry := range view.History() {
		fmt.Fprintf(w, "%s\t%d\n", entry.DateAdded.Format(client.DateLayout), entry.Quantity)
	}
	w.Flush()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
