package main

import (
	"log"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.Migrate()

	log.Println("🌱 Menjalankan seeder...")
	seeds.SeedSuperadmin(database.DB)
	seeds.SeedPengaturan(database.DB)
	log.Println("🌱 Seeder selesai.")
}
