package salin

// sectionNames lists the UI sections of the translation bundle, in serving
// order.
var sectionNames = []string{
	"common",
	"auth",
	"admin",
	"barangayPresident",
	"pwdMember",
	"forms",
	"tables",
	"messages",
}

// BaseSections holds the canonical English copy for every UI section. It is
// compiled in and never mutated; translated variants are derived from it on
// demand and live only in the cache.
var BaseSections = map[string]Tree{
	"common": {
		{"appName", Leaf("PWD Affairs Office")},
		{"navigation", Tree{
			{"dashboard", Leaf("Dashboard")},
			{"applications", Leaf("Applications")},
			{"members", Leaf("PWD Members")},
			{"benefits", Leaf("Benefits")},
			{"announcements", Leaf("Announcements")},
			{"supportTickets", Leaf("Support Tickets")},
			{"reports", Leaf("Reports")},
			{"settings", Leaf("Settings")},
			{"logout", Leaf("Log Out")},
		}},
		{"actions", Tree{
			{"save", Leaf("Save")},
			{"cancel", Leaf("Cancel")},
			{"edit", Leaf("Edit")},
			{"delete", Leaf("Delete")},
			{"search", Leaf("Search")},
			{"submit", Leaf("Submit")},
			{"back", Leaf("Back")},
			{"print", Leaf("Print")},
			{"download", Leaf("Download")},
			{"viewDetails", Leaf("View Details")},
		}},
		{"status", Tree{
			{"pending", Leaf("Pending")},
			{"approved", Leaf("Approved")},
			{"rejected", Leaf("Rejected")},
			{"active", Leaf("Active")},
			{"inactive", Leaf("Inactive")},
			{"expired", Leaf("Expired")},
		}},
		{"loading", Leaf("Loading...")},
		{"noData", Leaf("No data available")},
	},
	"auth": {
		{"login", Tree{
			{"title", Leaf("Sign in to your account")},
			{"username", Leaf("Username")},
			{"password", Leaf("Password")},
			{"signIn", Leaf("Sign In")},
			{"forgotPassword", Leaf("Forgot password?")},
			{"rememberMe", Leaf("Remember me")},
		}},
		{"errors", Tree{
			{"invalidCredentials", Leaf("Invalid username or password")},
			{"sessionExpired", Leaf("Your session has expired. Please sign in again.")},
			{"accountLocked", Leaf("Your account has been locked. Contact the PWD Affairs Office.")},
		}},
	},
	"admin": {
		{"dashboard", Tree{
			{"totalMembers", Leaf("Total Registered PWD Members")},
			{"pendingApplications", Leaf("Pending Applications")},
			{"approvedThisMonth", Leaf("Approved This Month")},
			{"idCardsIssued", Leaf("ID Cards Issued")},
			{"activeBenefits", Leaf("Active Benefit Programs")},
		}},
		{"applications", Tree{
			{"reviewTitle", Leaf("Application Review")},
			{"approve", Leaf("Approve Application")},
			{"reject", Leaf("Reject Application")},
			{"remarks", Leaf("Remarks")},
			{"requireDocuments", Leaf("Request Additional Documents")},
		}},
		{"idCards", Tree{
			{"issue", Leaf("Issue PWD ID")},
			{"renew", Leaf("Renew PWD ID")},
			{"validUntil", Leaf("Valid Until")},
		}},
	},
	"barangayPresident": {
		{"queue", Tree{
			{"title", Leaf("Barangay Endorsement Queue")},
			{"endorse", Leaf("Endorse to Municipal Office")},
			{"returnToApplicant", Leaf("Return to Applicant")},
			{"endorsementNote", Leaf("Endorsement Note")},
		}},
		{"masterlist", Tree{
			{"title", Leaf("Barangay PWD Masterlist")},
			{"exportList", Leaf("Export Masterlist")},
		}},
	},
	"pwdMember": {
		{"myId", Tree{
			{"title", Leaf("My PWD ID")},
			{"idNumber", Leaf("ID Number")},
			{"showQr", Leaf("Show QR Code")},
			{"requestRenewal", Leaf("Request Renewal")},
		}},
		{"myApplications", Tree{
			{"title", Leaf("My Applications")},
			{"trackStatus", Leaf("Track Application Status")},
			{"submitNew", Leaf("Submit New Application")},
		}},
		{"myBenefits", Tree{
			{"title", Leaf("My Benefits")},
			{"claimHistory", Leaf("Claim History")},
			{"availableBenefits", Leaf("Available Benefits")},
		}},
	},
	"forms": {
		{"personal", Tree{
			{"firstName", Leaf("First Name")},
			{"middleName", Leaf("Middle Name")},
			{"lastName", Leaf("Last Name")},
			{"suffix", Leaf("Suffix")},
			{"birthDate", Leaf("Date of Birth")},
			{"sex", Leaf("Sex")},
			{"civilStatus", Leaf("Civil Status")},
		}},
		{"contact", Tree{
			{"address", Leaf("Address")},
			{"barangay", Leaf("Barangay")},
			{"contactNumber", Leaf("Contact Number")},
			{"emailAddress", Leaf("Email Address")},
		}},
		{"disability", Tree{
			{"type", Leaf("Type of Disability")},
			{"cause", Leaf("Cause of Disability")},
			{"certifyingPhysician", Leaf("Certifying Physician")},
		}},
		{"guardian", Tree{
			{"name", Leaf("Guardian Name")},
			{"relationship", Leaf("Relationship to Applicant")},
		}},
		{"required", Leaf("This field is required")},
	},
	"tables": {
		{"headers", Tree{
			{"name", Leaf("Name")},
			{"pwdIdNumber", Leaf("PWD ID No.")},
			{"barangay", Leaf("Barangay")},
			{"dateApplied", Leaf("Date Applied")},
			{"status", Leaf("Status")},
			{"actions", Leaf("Actions")},
		}},
		{"pagination", Tree{
			{"previous", Leaf("Previous")},
			{"next", Leaf("Next")},
			{"rowsPerPage", Leaf("Rows per page")},
			{"noRecords", Leaf("No records found")},
		}},
	},
	"messages": {
		{"success", Tree{
			{"saved", Leaf("Record saved successfully")},
			{"updated", Leaf("Record updated successfully")},
			{"deleted", Leaf("Record deleted successfully")},
			{"applicationSubmitted", Leaf("Your application has been submitted")},
			{"idIssued", Leaf("PWD ID issued successfully")},
		}},
		{"error", Tree{
			{"generic", Leaf("Something went wrong. Please try again.")},
			{"notFound", Leaf("The requested record was not found")},
			{"unauthorized", Leaf("You are not allowed to perform this action")},
		}},
		{"confirm", Tree{
			{"delete", Leaf("Are you sure you want to delete this record?")},
			{"approve", Leaf("Are you sure you want to approve this application?")},
			{"reject", Leaf("Are you sure you want to reject this application?")},
		}},
	},
}

// SectionNames lists the sections of the UI bundle, in serving order.
func SectionNames() []string {
	out := make([]string, len(sectionNames))
	copy(out, sectionNames)
	return out
}

// BaseSection returns the compiled-in English copy for a named section.
// Unknown names are not an error: callers get an empty tree and the UI falls
// back to its hardcoded English strings.
func BaseSection(name string) (Tree, bool) {
	t, ok := BaseSections[name]
	return t, ok
}
