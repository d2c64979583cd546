package portal

import "github.com/ogurasousui/job-portal/internal/core/record"

// エンティティと DTO の変換規則をここに集約します。変換はすべて明示的な
// フィールド対応で、監査フィールドの CreatedAt / CreatedBy は DTO 側の値を
// 採用しません（作成時はサービスが、更新時はリポジトリが決定します）。
// 結合由来の表示専用フィールドはエンティティ→DTO 方向にのみ流れます。

// CompanyMapper は Company と CompanyDTO の変換規則です。
var CompanyMapper = record.Mapper[*Company, CompanyDTO]{
	ToDTO: func(c *Company) CompanyDTO {
		return CompanyDTO{
			ID:            c.ID,
			Name:          c.Name,
			Website:       c.Website,
			Country:       c.Country,
			City:          c.City,
			LogoURL:       c.LogoURL,
			Description:   c.Description,
			OwnerUserID:   c.OwnerUserID,
			Status:        c.Status,
			OwnerUserName: c.OwnerUserName,
			State:         c.State,
			CreatedAt:     c.CreatedAt,
			UpdatedAt:     c.UpdatedAt,
		}
	},
	ToEntity: func(d CompanyDTO) *Company {
		c := &Company{
			Name:        d.Name,
			Website:     d.Website,
			Country:     d.Country,
			City:        d.City,
			LogoURL:     d.LogoURL,
			Description: d.Description,
			OwnerUserID: d.OwnerUserID,
			Status:      d.Status,
		}
		if c.Status == "" {
			c.Status = CompanyPending
		}
		c.ID = d.ID
		c.State = d.State
		return c
	},
}

// EmployerProfileMapper は EmployerProfile と EmployerProfileDTO の変換規則です。
var EmployerProfileMapper = record.Mapper[*EmployerProfile, EmployerProfileDTO]{
	ToDTO: func(p *EmployerProfile) EmployerProfileDTO {
		return EmployerProfileDTO{
			ID:          p.ID,
			UserID:      p.UserID,
			CompanyID:   p.CompanyID,
			JobTitle:    p.JobTitle,
			Phone:       p.Phone,
			FullName:    p.FullName,
			CompanyName: p.CompanyName,
			State:       p.State,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
	},
	ToEntity: func(d EmployerProfileDTO) *EmployerProfile {
		p := &EmployerProfile{
			UserID:    d.UserID,
			CompanyID: d.CompanyID,
			JobTitle:  d.JobTitle,
			Phone:     d.Phone,
			FullName:  d.FullName,
		}
		p.ID = d.ID
		p.State = d.State
		return p
	},
}

// JobPostMapper は JobPost と JobPostDTO の変換規則です。
var JobPostMapper = record.Mapper[*JobPost, JobPostDTO]{
	ToDTO: func(j *JobPost) JobPostDTO {
		return JobPostDTO{
			ID:                 j.ID,
			CompanyID:          j.CompanyID,
			JobCategoryID:      j.JobCategoryID,
			JobTypeID:          j.JobTypeID,
			Title:              j.Title,
			Description:        j.Description,
			Requirements:       j.Requirements,
			Country:            j.Country,
			City:               j.City,
			MinExperienceYears: j.MinExperienceYears,
			MaxExperienceYears: j.MaxExperienceYears,
			MinSalary:          j.MinSalary,
			MaxSalary:          j.MaxSalary,
			Currency:           j.Currency,
			ExpiresAt:          j.ExpiresAt,
			CompanyName:        j.CompanyName,
			JobCategoryName:    j.JobCategoryName,
			JobTypeName:        j.JobTypeName,
			State:              j.State,
			CreatedAt:          j.CreatedAt,
			UpdatedAt:          j.UpdatedAt,
		}
	},
	ToEntity: func(d JobPostDTO) *JobPost {
		j := &JobPost{
			CompanyID:          d.CompanyID,
			JobCategoryID:      d.JobCategoryID,
			JobTypeID:          d.JobTypeID,
			Title:              d.Title,
			Description:        d.Description,
			Requirements:       d.Requirements,
			Country:            d.Country,
			City:               d.City,
			MinExperienceYears: d.MinExperienceYears,
			MaxExperienceYears: d.MaxExperienceYears,
			MinSalary:          d.MinSalary,
			MaxSalary:          d.MaxSalary,
			Currency:           d.Currency,
			ExpiresAt:          d.ExpiresAt,
		}
		j.ID = d.ID
		j.State = d.State
		return j
	},
}

// JobCategoryMapper は JobCategory と JobCategoryDTO の変換規則です。
var JobCategoryMapper = record.Mapper[*JobCategory, JobCategoryDTO]{
	ToDTO: func(c *JobCategory) JobCategoryDTO {
		return JobCategoryDTO{
			ID:        c.ID,
			Name:      c.Name,
			State:     c.State,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	},
	ToEntity: func(d JobCategoryDTO) *JobCategory {
		c := &JobCategory{Name: d.Name}
		c.ID = d.ID
		c.State = d.State
		return c
	},
}

// JobTypeMapper は JobType と JobTypeDTO の変換規則です。
var JobTypeMapper = record.Mapper[*JobType, JobTypeDTO]{
	ToDTO: func(t *JobType) JobTypeDTO {
		return JobTypeDTO{
			ID:        t.ID,
			Name:      t.Name,
			State:     t.State,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		}
	},
	ToEntity: func(d JobTypeDTO) *JobType {
		t := &JobType{Name: d.Name}
		t.ID = d.ID
		t.State = d.State
		return t
	},
}

// ApplicationMapper は Application と ApplicationDTO の変換規則です。
var ApplicationMapper = record.Mapper[*Application, ApplicationDTO]{
	ToDTO: func(a *Application) ApplicationDTO {
		return ApplicationDTO{
			ID:              a.ID,
			JobPostID:       a.JobPostID,
			JobSeekerID:     a.JobSeekerID,
			ApplicantUserID: a.ApplicantUserID,
			CoverLetter:     a.CoverLetter,
			CVFileID:        a.CVFileID,
			CVFilePath:      a.CVFilePath,
			Status:          a.Status,
			JobTitle:        a.JobTitle,
			CompanyName:     a.CompanyName,
			State:           a.State,
			CreatedAt:       a.CreatedAt,
			UpdatedAt:       a.UpdatedAt,
		}
	},
	ToEntity: func(d ApplicationDTO) *Application {
		a := &Application{
			JobPostID:       d.JobPostID,
			JobSeekerID:     d.JobSeekerID,
			ApplicantUserID: d.ApplicantUserID,
			CoverLetter:     d.CoverLetter,
			CVFileID:        d.CVFileID,
			CVFilePath:      d.CVFilePath,
			Status:          d.Status,
		}
		if a.Status == "" {
			a.Status = ApplicationPending
		}
		a.ID = d.ID
		a.State = d.State
		return a
	},
}

// JobSeekerProfileMapper は JobSeekerProfile と JobSeekerProfileDTO の変換規則です。
var JobSeekerProfileMapper = record.Mapper[*JobSeekerProfile, JobSeekerProfileDTO]{
	ToDTO: func(p *JobSeekerProfile) JobSeekerProfileDTO {
		return JobSeekerProfileDTO{
			ID:                p.ID,
			UserID:            p.UserID,
			Headline:          p.Headline,
			Summary:           p.Summary,
			Country:           p.Country,
			City:              p.City,
			YearsOfExperience: p.YearsOfExperience,
			CVFilePath:        p.CVFilePath,
			State:             p.State,
			CreatedAt:         p.CreatedAt,
			UpdatedAt:         p.UpdatedAt,
		}
	},
	ToEntity: func(d JobSeekerProfileDTO) *JobSeekerProfile {
		p := &JobSeekerProfile{
			UserID:            d.UserID,
			Headline:          d.Headline,
			Summary:           d.Summary,
			Country:           d.Country,
			City:              d.City,
			YearsOfExperience: d.YearsOfExperience,
			CVFilePath:        d.CVFilePath,
		}
		p.ID = d.ID
		p.State = d.State
		return p
	},
}

// CVFileMapper は CVFile と CVFileDTO の変換規則です。
var CVFileMapper = record.Mapper[*CVFile, CVFileDTO]{
	ToDTO: func(f *CVFile) CVFileDTO {
		return CVFileDTO{
			ID:            f.ID,
			JobSeekerID:   f.JobSeekerID,
			FileName:      f.FileName,
			ContentType:   f.ContentType,
			BlobURL:       f.BlobURL,
			FileSizeBytes: f.FileSizeBytes,
			IsPrimary:     f.IsPrimary,
			State:         f.State,
			CreatedAt:     f.CreatedAt,
			UpdatedAt:     f.UpdatedAt,
		}
	},
	ToEntity: func(d CVFileDTO) *CVFile {
		f := &CVFile{
			JobSeekerID:   d.JobSeekerID,
			FileName:      d.FileName,
			ContentType:   d.ContentType,
			BlobURL:       d.BlobURL,
			FileSizeBytes: d.FileSizeBytes,
			IsPrimary:     d.IsPrimary,
		}
		f.ID = d.ID
		f.State = d.State
		return f
	},
}

// SavedJobMapper は SavedJob と SavedJobDTO の変換規則です。
var SavedJobMapper = record.Mapper[*SavedJob, SavedJobDTO]{
	ToDTO: func(s *SavedJob) SavedJobDTO {
		return SavedJobDTO{
			ID:        s.ID,
			UserID:    s.UserID,
			JobPostID: s.JobPostID,
			JobTitle:  s.JobTitle,
			State:     s.State,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}
	},
	ToEntity: func(d SavedJobDTO) *SavedJob {
		s := &SavedJob{UserID: d.UserID, JobPostID: d.JobPostID}
		s.ID = d.ID
		s.State = d.State
		return s
	},
}

// 以下のコンストラクタがエンティティごとの唯一の個別コードです。
// どのエンティティも共通メソッドを上書きしません。

// NewCompanyService は Company 用の汎用サービスを生成します。
func NewCompanyService(repo record.Repository[*Company]) *record.Service[*Company, CompanyDTO] {
	return record.NewService(repo, CompanyMapper)
}

// NewEmployerProfileService は EmployerProfile 用の汎用サービスを生成します。
func NewEmployerProfileService(repo record.Repository[*EmployerProfile]) *record.Service[*EmployerProfile, EmployerProfileDTO] {
	return record.NewService(repo, EmployerProfileMapper)
}

// NewJobPostService は JobPost 用の汎用サービスを生成します。
func NewJobPostService(repo record.Repository[*JobPost]) *record.Service[*JobPost, JobPostDTO] {
	return record.NewService(repo, JobPostMapper)
}

// NewJobCategoryService は JobCategory 用の汎用サービスを生成します。
func NewJobCategoryService(repo record.Repository[*JobCategory]) *record.Service[*JobCategory, JobCategoryDTO] {
	return record.NewService(repo, JobCategoryMapper)
}

// NewJobTypeService は JobType 用の汎用サービスを生成します。
func NewJobTypeService(repo record.Repository[*JobType]) *record.Service[*JobType, JobTypeDTO] {
	return record.NewService(repo, JobTypeMapper)
}

// NewApplicationService は Application 用の汎用サービスを生成します。
func NewApplicationService(repo record.Repository[*Application]) *record.Service[*Application, ApplicationDTO] {
	return record.NewService(repo, ApplicationMapper)
}

// NewJobSeekerProfileService は JobSeekerProfile 用の汎用サービスを生成します。
func NewJobSeekerProfileService(repo record.Repository[*JobSeekerProfile]) *record.Service[*JobSeekerProfile, JobSeekerProfileDTO] {
	return record.NewService(repo, JobSeekerProfileMapper)
}

// NewCVFileService は CVFile 用の汎用サービスを生成します。
func NewCVFileService(repo record.Repository[*CVFile]) *record.Service[*CVFile, CVFileDTO] {
	return record.NewService(repo, CVFileMapper)
}

// NewSavedJobService は SavedJob 用の汎用サービスを生成します。
func NewSavedJobService(repo record.Repository[*SavedJob]) *record.Service[*SavedJob, SavedJobDTO] {
	return record.NewService(repo, SavedJobMapper)
}
