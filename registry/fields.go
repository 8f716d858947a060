package registry

// FieldKind selects the input control used to collect a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindDate     FieldKind = "date"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindURL      FieldKind = "url"
	KindNumber   FieldKind = "number"
)

// FieldConfig describes how a single field is labelled and rendered.
type FieldConfig struct {
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder" yaml:"placeholder"`
	Kind        FieldKind `json:"kind" yaml:"kind"`
}

var fieldCatalog = map[string]FieldConfig{
	"recipientName":   {Label: "Recipient Name", Placeholder: "Mr./Ms. John Doe", Kind: KindText},
	"recipientTitle":  {Label: "Recipient Title", Placeholder: "Manager, HR Department", Kind: KindText},
	"organization":    {Label: "Organization", Placeholder: "ABC Company Ltd.", Kind: KindText},
	"subject":         {Label: "Subject", Placeholder: "Request for Permission", Kind: KindText},
	"reason":          {Label: "Reason", Placeholder: "Explain the reason...", Kind: KindTextarea},
	"duration":        {Label: "Duration", Placeholder: "e.g., 3 days, 1 week", Kind: KindText},
	"senderName":      {Label: "Your Name", Placeholder: "Your Full Name", Kind: KindText},
	"senderTitle":     {Label: "Your Title", Placeholder: "Your Position", Kind: KindText},
	"principalName":   {Label: "Principal's Name", Placeholder: "Principal Name", Kind: KindText},
	"schoolName":      {Label: "School Name", Placeholder: "School Name", Kind: KindText},
	"studentName":     {Label: "Student Name", Placeholder: "Student Full Name", Kind: KindText},
	"class":           {Label: "Class/Grade", Placeholder: "e.g., 10th Grade", Kind: KindText},
	"date":            {Label: "Date", Placeholder: "", Kind: KindDate},
	"parentName":      {Label: "Parent Name", Placeholder: "Parent/Guardian Name", Kind: KindText},
	"hiringManager":   {Label: "Hiring Manager", Placeholder: "Hiring Manager Name", Kind: KindText},
	"company":         {Label: "Company Name", Placeholder: "Company Name", Kind: KindText},
	"position":        {Label: "Position", Placeholder: "Job Title", Kind: KindText},
	"introduction":    {Label: "Introduction", Placeholder: "Introduce yourself...", Kind: KindTextarea},
	"experience":      {Label: "Relevant Experience", Placeholder: "Highlight your experience...", Kind: KindTextarea},
	"whyCompany":      {Label: "Why This Company", Placeholder: "Why you want to join...", Kind: KindTextarea},
	"closing":         {Label: "Closing Statement", Placeholder: "Closing remarks...", Kind: KindTextarea},
	"yourName":        {Label: "Your Full Name", Placeholder: "Your Name", Kind: KindText},
	"email":           {Label: "Email", Placeholder: "your.email@example.com", Kind: KindEmail},
	"phone":           {Label: "Phone Number", Placeholder: "+1 (555) 000-0000", Kind: KindTel},
	"address":         {Label: "Address", Placeholder: "Your Address", Kind: KindText},
	"opening":         {Label: "Opening Paragraph", Placeholder: "Opening statement...", Kind: KindTextarea},
	"qualifications":  {Label: "Qualifications", Placeholder: "Your qualifications...", Kind: KindTextarea},
	"conclusion":      {Label: "Conclusion", Placeholder: "Concluding remarks...", Kind: KindTextarea},
	"hook":            {Label: "Opening Hook", Placeholder: "Attention-grabbing opening...", Kind: KindTextarea},
	"achievements":    {Label: "Key Achievements", Placeholder: "Notable achievements...", Kind: KindTextarea},
	"passion":         {Label: "Your Passion", Placeholder: "What drives you...", Kind: KindTextarea},
	"portfolio":       {Label: "Portfolio URL", Placeholder: "https://yourportfolio.com", Kind: KindURL},
	"fullName":        {Label: "Full Name", Placeholder: "Your Full Name", Kind: KindText},
	"title":           {Label: "Professional Title", Placeholder: "e.g., Software Engineer", Kind: KindText},
	"location":        {Label: "Location", Placeholder: "City, Country", Kind: KindText},
	"summary":         {Label: "Professional Summary", Placeholder: "Brief professional summary...", Kind: KindTextarea},
	"education":       {Label: "Education", Placeholder: "Degree, University, Year", Kind: KindTextarea},
	"skills":          {Label: "Skills", Placeholder: "Skill 1, Skill 2, Skill 3...", Kind: KindTextarea},
	"tagline":         {Label: "Professional Tagline", Placeholder: "Your tagline...", Kind: KindText},
	"about":           {Label: "About You", Placeholder: "Tell about yourself...", Kind: KindTextarea},
	"projects":        {Label: "Projects", Placeholder: "Notable projects...", Kind: KindTextarea},
	"github":          {Label: "GitHub", Placeholder: "github.com/username", Kind: KindURL},
	"linkedin":        {Label: "LinkedIn", Placeholder: "linkedin.com/in/username", Kind: KindURL},
	"technicalSkills": {Label: "Technical Skills", Placeholder: "Programming languages, tools...", Kind: KindTextarea},
	"certifications":  {Label: "Certifications", Placeholder: "Relevant certifications...", Kind: KindTextarea},
	"managerName":     {Label: "Manager Name", Placeholder: "Manager's Name", Kind: KindText},
	"leaveType":       {Label: "Leave Type", Placeholder: "e.g., Annual Leave, Sick Leave", Kind: KindText},
	"startDate":       {Label: "Start Date", Placeholder: "", Kind: KindDate},
	"endDate":         {Label: "End Date", Placeholder: "", Kind: KindDate},
	"contactInfo":     {Label: "Contact Information", Placeholder: "Emergency contact...", Kind: KindText},
	"employeeId":      {Label: "Employee ID", Placeholder: "Your Employee ID", Kind: KindText},
	"emergencyType":   {Label: "Emergency Type", Placeholder: "Nature of emergency", Kind: KindText},
	"contactNumber":   {Label: "Contact Number", Placeholder: "Emergency contact number", Kind: KindTel},
	"message":         {Label: "Personal Message", Placeholder: "Your heartfelt message...", Kind: KindTextarea},
	"wishes":          {Label: "Wishes", Placeholder: "Special wishes...", Kind: KindTextarea},
	"coupleName":      {Label: "Couple Name", Placeholder: "Names of the couple", Kind: KindText},
	"years":           {Label: "Years", Placeholder: "Number of years", Kind: KindNumber},
	"achievement":     {Label: "Achievement", Placeholder: "What they achieved...", Kind: KindText},
	"holiday":         {Label: "Holiday", Placeholder: "e.g., Christmas, New Year", Kind: KindText},
	"proposal":        {Label: "Proposal Details", Placeholder: "Your proposal...", Kind: KindTextarea},
	"benefits":        {Label: "Benefits", Placeholder: "Benefits of your proposal...", Kind: KindTextarea},
	"nextSteps":       {Label: "Next Steps", Placeholder: "Proposed next steps...", Kind: KindTextarea},
	"yourCompany":     {Label: "Your Company", Placeholder: "Your Company Name", Kind: KindText},
	"inquiry":         {Label: "Inquiry", Placeholder: "Your inquiry...", Kind: KindTextarea},
	"questions":       {Label: "Specific Questions", Placeholder: "Questions you have...", Kind: KindTextarea},
	"orderNumber":     {Label: "Order/Reference Number", Placeholder: "Order #12345", Kind: KindText},
	"issue":           {Label: "Issue/Problem", Placeholder: "Describe the issue...", Kind: KindTextarea},
	"resolution":      {Label: "Desired Resolution", Placeholder: "What resolution you seek...", Kind: KindTextarea},
}

// Field looks up the catalog entry for a field name.
func Field(name string) (FieldConfig, bool) {
	config, ok := fieldCatalog[name]
	return config, ok
}

// IsParagraph reports whether a field collects multi-line text.
func IsParagraph(name string) bool {
	config, ok := fieldCatalog[name]
	return ok && config.Kind == KindTextarea
}
