package shell

// Prompts and messages shown to the shop keeper.
const (
	promptCommand     = "Inserisci un comando: "
	promptName        = "Nome del prodotto: "
	promptQuantity    = "Quantità: "
	promptCost        = "Prezzo di acquisto: "
	promptPrice       = "Prezzo di vendita: "
	promptSearchAgain = "Vuoi cercare un altro prodotto ? (si/no): "
	promptAnother     = "Aggiungere un altro prodotto ? (si/no): "

	msgBye            = "Bye bye"
	msgInvalidCommand = "Comando non valido"
	msgNotFound       = "Prodotto non trovato."
	msgUnavailable    = "Quantità non disponibile."
	msgSaleRecorded   = "VENDITA REGISTRATA"
	msgProductsHeader = "PRODOTTO\tQUANTITA'\tPREZZO"
	msgHelpHeader     = "I comandi disponibili sono i seguenti:"

	// yes is the only affirmative answer.
	yes = "si"
)
