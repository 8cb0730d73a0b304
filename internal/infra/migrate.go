package infra

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
)

// Migration is one versioned schema step. The list is applied in order,
// idempotently, before the server accepts traffic.
type Migration struct {
	ID  string
	Run func(tx *gorm.DB) error
}

type schemaMigration struct {
	ID        string `gorm:"primaryKey"`
	AppliedAt int64
}

func (schemaMigration) TableName() string { return "schema_migrations" }

func migrations() []Migration {
	return []Migration{
		{
			ID: "001_initial_schema",
			Run: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&db_models.ActivityType{},
					&db_models.AvailableActivity{},
					&db_models.Trip{},
					&db_models.Itinerary{},
					&db_models.Activity{},
					&db_models.File{},
					&db_models.AssociatedFile{},
					&db_models.FutureTrip{},
					&db_models.FutureItinerary{},
					&db_models.FutureActivity{},
					&db_models.ChatMessage{},
					&db_models.MigrationLog{},
				)
			},
		},
		{
			ID:  "002_seed_catalogs",
			Run: seedCatalogs,
		},
	}
}

// RunMigrations applies every pending migration inside its own transaction
// and records it in schema_migrations.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("preparing schema_migrations: %w", err)
	}

	for _, m := range migrations() {
		var count int64
		if err := db.Model(&schemaMigration{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("checking migration %s: %w", m.ID, err)
		}
		if count > 0 {
			continue
		}

		log.Printf("Applying migration %s", m.ID)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: m.ID, AppliedAt: time.Now().Unix()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.ID, err)
		}
	}

	return nil
}

func seedCatalogs(tx *gorm.DB) error {
	types := []db_models.ActivityType{
		{Name: "senderismo", Description: "Rutas a pie por naturaleza o montaña"},
		{Name: "ciclismo", Description: "Recorridos en bicicleta"},
		{Name: "visita cultural", Description: "Museos, monumentos y cascos históricos"},
		{Name: "gastronomía", Description: "Restaurantes, mercados y catas"},
		{Name: "playa", Description: "Jornadas de costa y baño"},
		{Name: "paseo urbano", Description: "Caminatas por ciudad"},
	}

	for i := range types {
		if err := tx.Where("name = ?", types[i].Name).
			FirstOrCreate(&types[i]).Error; err != nil {
			return err
		}
	}

	available := []db_models.AvailableActivity{
		{Name: "Ruta de senderismo guiada", ActivityTypeID: &types[0].ID},
		{Name: "Alquiler de bicicletas", ActivityTypeID: &types[1].ID},
		{Name: "Entrada a museo", ActivityTypeID: &types[2].ID},
		{Name: "Tour gastronómico", ActivityTypeID: &types[3].ID},
		{Name: "Día de playa", ActivityTypeID: &types[4].ID},
		{Name: "Free tour por el centro", ActivityTypeID: &types[5].ID},
	}

	for i := range available {
		if err := tx.Where("name = ?", available[i].Name).
			FirstOrCreate(&available[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
