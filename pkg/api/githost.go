package api

// RepoAccess is an access grant on a hosted repository.
type RepoAccess struct {
	AccessLevel int `json:"access_level"`
}

// RepoPermissions mirrors the permissions block of a GitLab project.
type RepoPermissions struct {
	ProjectAccess *RepoAccess `json:"project_access"`
	GroupAccess   *RepoAccess `json:"group_access"`
}

// RepoProject is a project on the git hosting service.
type RepoProject struct {
	Permissions       *RepoPermissions `json:"permissions,omitempty"`
	Name              string           `json:"name"`
	PathWithNamespace string           `json:"path_with_namespace"`
	Description       string           `json:"description"`
	HTTPURLToRepo     string           `json:"http_url_to_repo"`
	SSHURLToRepo      string           `json:"ssh_url_to_repo"`
	WebURL            string           `json:"web_url"`
	Visibility        string           `json:"visibility"`
	TagList           []string         `json:"tag_list"`
	ID                int64            `json:"id"`
}

// Namespace is a user or group namespace on the git hosting service.
type Namespace struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	FullPath string `json:"full_path"`
	ID       int64  `json:"id"`
}

// RepoUser is a user account on the git hosting service.
type RepoUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	WebURL   string `json:"web_url"`
	ID       int64  `json:"id"`
}

// ForkRequest is the body of POST /projects/{id}/fork.
type ForkRequest struct {
	NamespacePath string `json:"namespace_path,omitempty"`
}

// CreateRepoRequest is the body of POST /projects.
type CreateRepoRequest struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}
