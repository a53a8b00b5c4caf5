package insights

import "fmt"

// Parámetros fijos del pedido. No son configurables.
const (
	MaxTokens   = 200
	Temperature = 0.7
)

const systemPrompt = "You are a helpful assistant analyzing medication logs for most common symptoms/side effects associated with the medicine and its dosage."

// buildPrompt arma el mensaje de usuario. Las notas van tal cual, sin sanitizar
// ni recortar: el único límite es el del proveedor.
func buildPrompt(medicineName, dosage, notes string) string {
	return fmt.Sprintf(
		"Analyze the following medication logs for %s with a dosage of %s:\n\n%s for a users most common symptom, keep the response concise and to the point. "+
			"Then please say \"You should also be aware of the following\" and then list all possible meds and vitamins to avoid or to take at a different time. "+
			"Explain any interactions that should be avoided, and vitamins to replenish on later.",
		medicineName, dosage, notes,
	)
}
