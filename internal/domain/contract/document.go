package contract

import (
	"context"
	"fmt"
	"strings"
)

// BoilerplateClause is the fixed terms clause printed on every contract.
const BoilerplateClause = "Terms: Intellectual property is assigned to the client. Arbitration venue: Singapore."

// Document renders the plain-text contract body handed to the PDF renderer.
func (s *Service) Document(ctx context.Context, id int) (string, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderDocument(c), nil
}

// RenderDocument formats a contract as the lines of its printed document.
func RenderDocument(c *Contract) string {
	var b strings.Builder
	b.WriteString("Goaoxor Contract\n\n")
	fmt.Fprintf(&b, "Contract ID: %d\n", c.ID)
	fmt.Fprintf(&b, "Order ID: %d\n", c.OrderID)
	fmt.Fprintf(&b, "Client: %s\n", c.ClientName)
	fmt.Fprintf(&b, "Provider: %s\n", c.ProviderName)
	fmt.Fprintf(&b, "Project value: $%.2f\n", c.ProjectValue)
	fmt.Fprintf(&b, "Contract type: %s\n", c.ContractType)
	fmt.Fprintf(&b, "Service type: %s\n\n", c.ServiceType)
	b.WriteString(BoilerplateClause)
	b.WriteString("\n")
	return b.String()
}

// DocumentFilename derives the download name for a contract document.
func DocumentFilename(c *Contract) string {
	return fmt.Sprintf("contract_order_%d_%s.pdf", c.OrderID, c.ContractType)
}
