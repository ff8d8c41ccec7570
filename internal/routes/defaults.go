package routes

// Default returns the built-in table of contents of the cryptography book.
func Default() []Entry {
	return []Entry{
		{Path: "/", Label: "Introduction", Exact: true, Page: "intro"},
		{Path: "/week1", Label: "ISBN and Credit verification", Exact: true, Page: "week1"},
		{Path: "/week2", Label: "Hamming Codes", Exact: true, Page: "week2"},
		{Path: "/week3", Label: "BCH (10,6)", Exact: true, Page: "week3"},
		{Path: "/week4", Label: "SHA1 Password Encryption", Exact: true, Page: "week4"},
		{Path: "/week5", Label: "SHA1 Password Decryption", Exact: true, Page: "week5"},
		{Path: "/week6", Label: "Ciphertexts and Steganography", Exact: true, Page: "week6"},
		{Path: "/week7", Label: "Two Time Pads", Exact: true, Page: "week7"},
	}
}
