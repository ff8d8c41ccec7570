package pages

func definitions() []*Page {
	return []*Page{
		{ID: "intro", Title: "Introduction"},
		{
			ID:    "week1",
			Title: "Credit and ISBN Verification",
			Forms: []Form{
				{
					ID: "isbn", Heading: "ISBN Code", Button: "Verify ISBN",
					Placeholder: "Enter a ten digit ISBN",
					Input:       InputNumeric, MinLength: 10, MaxLength: 10,
					submit: textCall(Service.VerifyISBN),
				},
				{
					ID: "ccn", Heading: "Credit Card Number", Button: "Verify CCN",
					Placeholder: "Enter a sixteen digit card number",
					Input:       InputNumeric, MinLength: 16, MaxLength: 16,
					submit: textCall(Service.VerifyCCN),
				},
			},
		},
		{
			ID:    "week2",
			Title: "Hamming Codes",
			Forms: []Form{
				{
					ID: "checkdigits", Heading: "Six Digit Input", Button: "Generate check digits",
					Placeholder: "Enter a six digit number",
					Input:       InputNumeric, MinLength: 6, MaxLength: 6,
					submit: textCall(Service.HammingCheckDigits),
				},
				{
					ID: "syndromes", Heading: "Ten Digit Input", Button: "Verify syndrome digits",
					Placeholder: "Enter a ten digit number",
					Input:       InputNumeric, MinLength: 10, MaxLength: 10,
					submit: textCall(Service.HammingSyndromes),
				},
			},
		},
		{
			ID:    "week3",
			Title: "BCH Codes",
			Forms: []Form{
				{
					ID: "bch", Button: "Verify BCH Code",
					Placeholder: "Enter a ten digit number",
					Input:       InputNumeric, MinLength: 10, MaxLength: 10,
					submit: textCall(Service.VerifyBCH),
				},
			},
		},
		{
			ID:    "week4",
			Title: "Password Encryption",
			Forms: []Form{
				{
					ID: "hash", Button: "Hash input",
					Placeholder: "Input to hash",
					Input:       InputText,
					submit:      textCall(Service.Hash),
				},
			},
		},
		{
			ID:    "week5",
			Title: "Password Decryption",
			Forms: []Form{
				{
					ID: "crack", Button: "Crack hash",
					Placeholder: "Password hashes",
					Input:       InputMultiline,
					submit:      tableCall("Password", Service.Crack),
				},
				{
					ID: "crackbch", Button: "Crack BCH Hash",
					Placeholder: "BCH Hashes",
					Input:       InputMultiline,
					submit:      tableCall("BCH Input", Service.CrackBCH),
				},
			},
		},
		{ID: "week6", Title: "Text Encryption via Stream Cipher and Steganography"},
		{ID: "week7", Title: "Two Time Pads"},
	}
}
