// seed は開発環境向けの初期データ投入コマンドです。ロール定義と既定の
// 求人分類・雇用形態を投入します。既に存在する行はスキップするため、
// 何度実行しても安全です。
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/job-portal/internal/adapters/repository/postgres"
	"github.com/ogurasousui/job-portal/internal/core/identity"
	"github.com/ogurasousui/job-portal/internal/core/portal"
	"github.com/ogurasousui/job-portal/internal/core/record"
	"github.com/ogurasousui/job-portal/internal/platform/config"
	pg "github.com/ogurasousui/job-portal/internal/platform/db/postgres"
)

// seedActor は投入データの作成者として監査フィールドに記録される名前です。
const seedActor = "seed"

var defaultRoles = []string{identity.RoleAdmin, identity.RoleEmployer, identity.RoleJobSeeker}

var defaultJobCategories = []string{
	"Engineering",
	"Design",
	"Marketing",
	"Sales",
	"Finance",
	"Human Resources",
}

var defaultJobTypes = []string{
	"Full-time",
	"Part-time",
	"Contract",
	"Internship",
	"Remote",
}

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		withDemo   = flag.Bool("demo", false, "also seed a demo employer and a pending company")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = os.Getenv("CONFIG_PATH")
	}
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer pool.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	txManager := pg.NewTransactionManager(pool)
	clock := record.RealClock()

	categorySvc := portal.NewJobCategoryService(
		postgres.NewJobCategoryRepository(pool, txManager, clock, logger))
	typeSvc := portal.NewJobTypeService(
		postgres.NewJobTypeRepository(pool, txManager, clock, logger))

	if err := seedRoles(ctx, pool); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}
	if err := seedJobCategories(ctx, categorySvc); err != nil {
		log.Fatalf("failed to seed job categories: %v", err)
	}
	if err := seedJobTypes(ctx, typeSvc); err != nil {
		log.Fatalf("failed to seed job types: %v", err)
	}

	if *withDemo {
		companySvc := portal.NewCompanyService(
			postgres.NewCompanyRepository(pool, txManager, clock, logger))
		if err := seedDemoCompany(ctx, pool, companySvc); err != nil {
			log.Fatalf("failed to seed demo company: %v", err)
		}
	}

	log.Printf("seed completed")
}

func seedRoles(ctx context.Context, pool pg.Queryer) error {
	for _, role := range defaultRoles {
		if _, err := pool.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
			return err
		}
	}
	return nil
}

// demoEmployerID は -demo 指定時に投入する開発用アカウントの固定 ID です。
const demoEmployerID = "11111111-1111-1111-1111-111111111111"

func seedDemoCompany(ctx context.Context, pool pg.Queryer, svc *record.Service[*portal.Company, portal.CompanyDTO]) error {
	if _, err := pool.Exec(ctx,
		`INSERT INTO users (id, user_name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		demoEmployerID, "demo-employer", "employer@jobportal.local"); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		demoEmployerID, identity.RoleEmployer); err != nil {
		return err
	}

	const demoCompanyName = "Acme Demo Works"

	existing, err := svc.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, dto := range existing {
		if dto.Name == demoCompanyName {
			return nil
		}
	}

	// Status を指定しないため承認待ちとして投入される。
	id, err := svc.Add(ctx, seedActor, portal.CompanyDTO{
		Name:        demoCompanyName,
		OwnerUserID: demoEmployerID,
	})
	if err != nil {
		return err
	}
	log.Printf("seeded demo company %q (%s)", demoCompanyName, id)
	return nil
}

func seedJobCategories(ctx context.Context, svc *record.Service[*portal.JobCategory, portal.JobCategoryDTO]) error {
	existing, err := svc.GetAll(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, dto := range existing {
		known[dto.Name] = true
	}

	for _, name := range defaultJobCategories {
		if known[name] {
			continue
		}
		if _, err := svc.Add(ctx, seedActor, portal.JobCategoryDTO{Name: name}); err != nil {
			return err
		}
		log.Printf("seeded job category %q", name)
	}
	return nil
}

func seedJobTypes(ctx context.Context, svc *record.Service[*portal.JobType, portal.JobTypeDTO]) error {
	existing, err := svc.GetAll(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, dto := range existing {
		known[dto.Name] = true
	}

	for _, name := range defaultJobTypes {
		if known[name] {
			continue
		}
		if _, err := svc.Add(ctx, seedActor, portal.JobTypeDTO{Name: name}); err != nil {
			return err
		}
		log.Printf("seeded job type %q", name)
	}
	return nil
}
