package domain

// Company is a railway operator.
type Company struct {
	CompanyCd        int64  `db:"company_cd" json:"company_cd"`
	RrCd             int64  `db:"rr_cd" json:"rr_cd"`
	CompanyName      string `db:"company_name" json:"company_name"`
	CompanyNameK     string `db:"company_name_k" json:"company_name_k"`
	CompanyNameH     string `db:"company_name_h" json:"company_name_h"`
	CompanyNameR     string `db:"company_name_r" json:"company_name_r"`
	CompanyNameEn    string `db:"company_name_en" json:"company_name_en"`
	CompanyNameFullEn string `db:"company_name_full_en" json:"company_name_full_en"`
	CompanyURL       *string `db:"company_url" json:"company_url,omitempty"`
	CompanyType      int64  `db:"company_type" json:"company_type"`
	EStatus          int64  `db:"e_status" json:"e_status"`
	ESort            int64  `db:"e_sort" json:"e_sort"`
}
