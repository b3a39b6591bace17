//go:build !unix && !windows

package collector

func uname() (Platform, error) {
	return Platform{}, ErrNotApplicable
}
