package reply

// Fixed user-facing texts.
const (
	EmptyInputReply = "Halo kak 😊 Ada yang bisa kami bantu?"

	WelcomeReply = "Halo kak 👋😊\n" +
		"Selamat datang di *Lucktees.id*\n\n" +
		"Kami melayani:\n" +
		"• Kaos polos CC 30s Grade A\n" +
		"• Custom kaos & hoodie\n" +
		"• Jersey printing\n" +
		"• Long sleeve & workshirt\n\n" +
		"Silakan tanya produk, harga, alamat, atau cara order ya kak."

	ApologyReply = "Maaf kak 🙏 sistem sedang sibuk. Bisa ditanyakan lagi ya 😊"

	StartReply = "Halo 👋 Saya Asisten Lucktees.id 👕\n" +
		"Silakan tanya soal kaos, sablon, harga, atau cara order 😊"
)

// greetings must equal the whole trimmed, lowercased message.
var greetings = map[string]struct{}{
	"halo":            {},
	"hai":             {},
	"hi":              {},
	"p":               {},
	"assalamualaikum": {},
}

func isGreeting(normalized string) bool {
	_, ok := greetings[normalized]
	return ok
}
