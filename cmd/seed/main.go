package main

import (
	"uhc-health-portal/config"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeds the demo dataset: the Gandhi Nagar ward, its ASHA workers, five
// households with members and vaccination history.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.Fatalf("Seed failed: %v", err)
	}

	logrus.Info("Database seed completed successfully")
}

func seed(db *gorm.DB) error {
	tx := db.Begin()
	defer tx.Rollback()

	// Clear existing demo data, children first
	for _, model := range []interface{}{
		&entity.Vaccination{},
		&entity.Member{},
		&entity.HouseholdCounter{},
		&entity.Household{},
		&entity.AshaWorker{},
		&entity.Ward{},
	} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	cleanliness := 78
	vaccinationRate := 91
	ward := entity.Ward{
		WardID:                    "WARD-KL-ER-12",
		State:                     "Kerala",
		District:                  "Ernakulam",
		WardName:                  "Gandhi Nagar",
		WardNumber:                12,
		CleanlinessRate:           &cleanliness,
		VaccinationCompletionRate: &vaccinationRate,
	}
	if err := tx.Create(&ward).Error; err != nil {
		return err
	}
	logrus.Infof("Ward created: %s", ward.WardID)

	workers := []entity.AshaWorker{
		{AshaID: "ASHA-12-001", WardID: ward.WardID, Name: "Anitha K", Phone: "9876543210", Email: strPtr("anitha@asha.kerala.gov.in"), Status: entity.AshaStatusActive},
		{AshaID: "ASHA-12-002", WardID: ward.WardID, Name: "Lekha R", Phone: "9876543211", Email: strPtr("lekha@asha.kerala.gov.in"), Status: entity.AshaStatusActive},
	}
	if err := tx.Create(&workers).Error; err != nil {
		return err
	}
	logrus.Infof("ASHA workers created: %d", len(workers))

	households := []entity.Household{
		household("HH-12-0001", "Kumar Family", "Ramesh Kumar", 82, 100, "2024-11-25", "UHC-2024-0001"),
		household("HH-12-0002", "Shaji Family", "Shaji", 74, 80, "2024-11-20", "UHC-2024-0002"),
		household("HH-12-0003", "Fatima Family", "Fatima", 89, 100, "2024-11-22", "UHC-2024-0003"),
		household("HH-12-0004", "Rajan Family", "Rajan", 70, 83, "2024-11-18", "UHC-2024-0004"),
		household("HH-12-0005", "Sumi Family", "Sumi", 90, 100, "2024-11-24", "UHC-2024-0005"),
	}
	if err := tx.Create(&households).Error; err != nil {
		return err
	}
	logrus.Infof("Households created: %d", len(households))

	type seedMember struct {
		householdID string
		name        string
		age         int
		relation    string
	}
	seedMembers := []seedMember{
		{"HH-12-0001", "Ramesh Kumar", 42, "Father"},
		{"HH-12-0001", "Lakshmi Kumar", 38, "Mother"},
		{"HH-12-0001", "Rahul Kumar", 12, "Son"},
		{"HH-12-0001", "Riya Kumar", 7, "Daughter"},
		{"HH-12-0002", "Shaji", 48, "Father"},
		{"HH-12-0002", "Mary Shaji", 45, "Mother"},
		{"HH-12-0002", "Joel Shaji", 19, "Son"},
		{"HH-12-0002", "Anna Shaji", 15, "Daughter"},
		{"HH-12-0002", "Grandmother", 71, "Grandmother"},
		{"HH-12-0003", "Fatima", 35, "Mother"},
		{"HH-12-0003", "Ahmed", 10, "Son"},
		{"HH-12-0003", "Sara", 6, "Daughter"},
		{"HH-12-0004", "Rajan", 50, "Father"},
		{"HH-12-0004", "Divya Rajan", 46, "Mother"},
		{"HH-12-0004", "Rishi", 17, "Son"},
		{"HH-12-0004", "Riya", 14, "Daughter"},
		{"HH-12-0004", "Rahul", 12, "Son"},
		{"HH-12-0004", "Grandfather", 70, "Grandfather"},
		{"HH-12-0005", "Sumi", 31, "Mother"},
		{"HH-12-0005", "Arya", 5, "Daughter"},
	}

	// Member UUIDs keyed by household+name so vaccinations can reference them.
	memberIDs := make(map[string]uuid.UUID, len(seedMembers))
	members := make([]entity.Member, len(seedMembers))
	for i, m := range seedMembers {
		id := uuid.New()
		memberIDs[m.householdID+"-"+m.name] = id
		members[i] = entity.Member{
			ID:          id,
			HouseholdID: m.householdID,
			Name:        m.name,
			Age:         m.age,
			Relation:    m.relation,
		}
	}
	if err := tx.Create(&members).Error; err != nil {
		return err
	}
	logrus.Infof("Members created: %d", len(members))

	type seedVaccination struct {
		memberKey string
		vaccine   string
		date      string
	}
	seedVaccinations := []seedVaccination{
		{"HH-12-0001-Ramesh Kumar", "COVID Dose 1", "2021-05-12"},
		{"HH-12-0001-Ramesh Kumar", "COVID Dose 2", "2021-08-15"},
		{"HH-12-0001-Ramesh Kumar", "Flu 2024", "2024-01-20"},
		{"HH-12-0001-Lakshmi Kumar", "COVID Dose 1", "2021-06-02"},
		{"HH-12-0001-Lakshmi Kumar", "COVID Dose 2", "2021-09-10"},
		{"HH-12-0001-Lakshmi Kumar", "Tetanus Booster", "2023-10-12"},
		{"HH-12-0001-Rahul Kumar", "DTP Booster", "2023-06-11"},
		{"HH-12-0001-Rahul Kumar", "MMR", "2018-04-19"},
		{"HH-12-0001-Riya Kumar", "Polio Oral", "2023-09-05"},
		{"HH-12-0001-Riya Kumar", "MMR", "2022-03-10"},
		{"HH-12-0002-Shaji", "COVID Dose 1", "2021-04-20"},
		{"HH-12-0002-Shaji", "COVID Dose 2", "2021-07-18"},
		{"HH-12-0002-Mary Shaji", "COVID Dose 1", "2021-05-10"},
		{"HH-12-0002-Mary Shaji", "COVID Dose 2", "2021-08-09"},
		{"HH-12-0002-Mary Shaji", "Flu 2024", "2024-02-01"},
		{"HH-12-0002-Joel Shaji", "COVID Dose 1", "2021-09-02"},
		{"HH-12-0002-Joel Shaji", "COVID Dose 2", "2021-12-06"},
		{"HH-12-0002-Anna Shaji", "MMR", "2015-06-15"},
		{"HH-12-0002-Anna Shaji", "DTP Booster", "2021-03-12"},
		{"HH-12-0002-Grandmother", "COVID Dose 1", "2021-03-10"},
		{"HH-12-0003-Fatima", "Flu 2024", "2024-01-22"},
		{"HH-12-0003-Fatima", "Hepatitis B", "2023-08-14"},
		{"HH-12-0003-Ahmed", "DTP", "2023-05-09"},
		{"HH-12-0003-Ahmed", "Polio Oral", "2022-11-10"},
		{"HH-12-0003-Sara", "MMR", "2021-02-18"},
		{"HH-12-0003-Sara", "Polio", "2022-03-10"},
		{"HH-12-0004-Rajan", "COVID Dose 1", "2021-05-12"},
		{"HH-12-0004-Divya Rajan", "COVID Dose 1", "2021-06-20"},
		{"HH-12-0004-Divya Rajan", "COVID Dose 2", "2021-09-28"},
		{"HH-12-0004-Rishi", "MMR", "2010-04-19"},
		{"HH-12-0004-Rishi", "DTP Booster", "2021-09-14"},
		{"HH-12-0004-Riya", "MMR", "2012-03-21"},
		{"HH-12-0004-Rahul", "DTP", "2022-12-11"},
		{"HH-12-0005-Sumi", "COVID Dose 1", "2021-07-15"},
		{"HH-12-0005-Sumi", "COVID Dose 2", "2021-10-14"},
		{"HH-12-0005-Arya", "Polio Oral", "2023-09-05"},
		{"HH-12-0005-Arya", "MMR", "2021-10-02"},
	}

	vaccinations := make([]entity.Vaccination, 0, len(seedVaccinations))
	for _, v := range seedVaccinations {
		memberID, ok := memberIDs[v.memberKey]
		if !ok {
			continue
		}
		vaccinations = append(vaccinations, entity.Vaccination{
			ID:              uuid.New(),
			MemberID:        memberID,
			VaccineName:     v.vaccine,
			VaccinationDate: v.date,
		})
	}
	if err := tx.Create(&vaccinations).Error; err != nil {
		return err
	}
	logrus.Infof("Vaccinations created: %d", len(vaccinations))

	return tx.Commit().Error
}

func household(id, familyName, familyHead string, cleanliness, vaccination int, lastVisit, uhcID string) entity.Household {
	return entity.Household{
		HouseholdID:           id,
		WardID:                "WARD-KL-ER-12",
		FamilyName:            familyName,
		FamilyHead:            familyHead,
		CleanlinessScore:      &cleanliness,
		VaccinationCompletion: &vaccination,
		LastVisit:             &lastVisit,
		Address:               strPtr("Gandhi Nagar, Ward 12"),
		UhcID:                 &uhcID,
	}
}

func strPtr(s string) *string {
	return &s
}
