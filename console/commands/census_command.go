package commands

import (
	"fmt"
	"text/tabwriter"
	"time"
)

type CensusCommand struct {
	BaseCommand
}

func (c *CensusCommand) GetSignature() string {
	return "census"
}

func (c *CensusCommand) GetDescription() string {
	return "List recorded ponds and beverages"
}

func (c *CensusCommand) Execute(args []string) error {
	fs := c.NewFlagSet(c.GetSignature())
	limit := fs.Int("limit", 20, "maximum rows per table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, closeStore, err := c.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ponds, err := store.ListPonds(*limit)
	if err != nil {
		return err
	}
	beverages, err := store.ListBeverages(*limit)
	if err != nil {
		return err
	}

	if len(ponds) == 0 && len(beverages) == 0 {
		c.PrintInfo("Census is empty")
		return nil
	}

	w := tabwriter.NewWriter(c.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PONDS")
	fmt.Fprintln(w, "ID\tVARIANT\tANIMALS\tPLANTS\tRECORDED")
	for _, p := range ponds {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Variant, p.Animals, p.Plants, p.CreatedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(w, "\nBEVERAGES")
	fmt.Fprintln(w, "ID\tKIND\tCOOKS\tWATER\tMATERIAL\tRECORDED")
	for _, b := range beverages {
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\t%s\n", b.ID, b.Kind, b.Cooks, b.Water, b.Material, b.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
