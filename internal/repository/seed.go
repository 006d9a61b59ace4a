package repository

import "github.com/google/uuid"

// seedUsers are the demo accounts created on an empty database.
func seedUsers() []User {
	return []User{
		{
			ID:            uuid.NewString(),
			Username:      "alice",
			PasswordHash:  "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
			WalletAddress: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		},
		{
			ID:            uuid.NewString(),
			Username:      "bob",
			PasswordHash:  "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
			WalletAddress: "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
		},
		{
			ID:            uuid.NewString(),
			Username:      "carol",
			PasswordHash:  "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
			WalletAddress: "0x90F79bf6EB2c4f870365E785982E1f101E93b906",
		},
		{
			ID:            uuid.NewString(),
			Username:      "dave",
			PasswordHash:  "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
			WalletAddress: "0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65",
		},
	}
}
