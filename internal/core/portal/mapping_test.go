package portal

import (
	"reflect"
	"testing"
	"time"

	"github.com/ogurasousui/job-portal/internal/core/record"
)

func TestCompanyMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	website := "https://example.com"
	dto := CompanyDTO{
		ID:          "company-1",
		Name:        "Example",
		Website:     &website,
		OwnerUserID: "user-1",
		Status:      CompanyApproved,
		State:       record.StateActive,
	}

	back := CompanyMapper.ToDTO(CompanyMapper.ToEntity(dto))

	if back.ID != dto.ID || back.Name != dto.Name || back.OwnerUserID != dto.OwnerUserID || back.Status != dto.Status {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
	if back.Website == nil || *back.Website != website {
		t.Fatalf("expected website preserved, got %+v", back.Website)
	}
}

func TestCompanyMapper_DefaultsToPending(t *testing.T) {
	t.Parallel()

	c := CompanyMapper.ToEntity(CompanyDTO{Name: "New"})
	if c.Status != CompanyPending {
		t.Fatalf("expected pending default, got %s", c.Status)
	}
}

func TestJobPostMapper_DerivedFieldsAreReadOnly(t *testing.T) {
	t.Parallel()

	companyName := "Example"
	post := &JobPost{
		CompanyID:     "company-1",
		JobCategoryID: "category-1",
		Title:         "Backend Engineer",
		Description:   "Build things",
		CompanyName:   &companyName,
	}
	post.ID = "post-1"
	post.CreatedAt = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	dto := JobPostMapper.ToDTO(post)
	if dto.CompanyName == nil || *dto.CompanyName != companyName {
		t.Fatalf("expected flattened company name, got %+v", dto.CompanyName)
	}

	// DTO 側の表示専用フィールドはエンティティへ戻らない。
	entity := JobPostMapper.ToEntity(dto)
	if entity.CompanyName != nil {
		t.Fatalf("expected derived field dropped on reverse map, got %q", *entity.CompanyName)
	}
	if entity.Title != post.Title || entity.CompanyID != post.CompanyID {
		t.Fatalf("declared fields must survive: %+v", entity)
	}
}

func TestApplicationMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	cover := "cover letter"
	dto := ApplicationDTO{
		ID:              "app-1",
		JobPostID:       "post-1",
		JobSeekerID:     "seeker-1",
		ApplicantUserID: "user-1",
		CoverLetter:     &cover,
		Status:          ApplicationShortlisted,
	}

	back := ApplicationMapper.ToDTO(ApplicationMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestEmployerProfileMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	companyID := "company-1"
	jobTitle := "HR Manager"
	phone := "090-0000-0000"
	fullName := "Taro Yamada"
	dto := EmployerProfileDTO{
		ID:        "profile-1",
		UserID:    "user-1",
		CompanyID: &companyID,
		JobTitle:  &jobTitle,
		Phone:     &phone,
		FullName:  &fullName,
		State:     record.StateActive,
	}

	back := EmployerProfileMapper.ToDTO(EmployerProfileMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestJobCategoryMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	dto := JobCategoryDTO{ID: "cat-1", Name: "Engineering", State: record.StateInactive}

	back := JobCategoryMapper.ToDTO(JobCategoryMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestJobTypeMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	dto := JobTypeDTO{ID: "type-1", Name: "Full-time", State: record.StateActive}

	back := JobTypeMapper.ToDTO(JobTypeMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestJobSeekerProfileMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	headline := "Backend engineer"
	summary := "Ten years of Go"
	country := "JP"
	city := "Tokyo"
	years := int16(10)
	cvPath := "/cv/user-1.pdf"
	dto := JobSeekerProfileDTO{
		ID:                "seeker-1",
		UserID:            "user-1",
		Headline:          &headline,
		Summary:           &summary,
		Country:           &country,
		City:              &city,
		YearsOfExperience: &years,
		CVFilePath:        &cvPath,
		State:             record.StateActive,
	}

	back := JobSeekerProfileMapper.ToDTO(JobSeekerProfileMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestCVFileMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	dto := CVFileDTO{
		ID:            "cv-1",
		JobSeekerID:   "seeker-1",
		FileName:      "resume.pdf",
		ContentType:   "application/pdf",
		BlobURL:       "https://blob.example.com/cv-1",
		FileSizeBytes: 20480,
		IsPrimary:     true,
		State:         record.StateActive,
	}

	back := CVFileMapper.ToDTO(CVFileMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestSavedJobMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	dto := SavedJobDTO{
		ID:        "saved-1",
		UserID:    "user-1",
		JobPostID: "post-1",
		State:     record.StateActive,
	}

	back := SavedJobMapper.ToDTO(SavedJobMapper.ToEntity(dto))
	dto.CreatedAt = back.CreatedAt
	dto.UpdatedAt = back.UpdatedAt
	if !reflect.DeepEqual(back, dto) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, dto)
	}
}

func TestIsValidCompanyStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []CompanyStatus{CompanyPending, CompanyApproved, CompanyRejected} {
		if !IsValidCompanyStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if IsValidCompanyStatus(CompanyStatus("archived")) {
		t.Fatal("expected unknown status to be invalid")
	}
}
