package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaudit/solaudit/internal/domain"
)

func TestAccessControl_InlineModifierGuards(t *testing.T) {
	source := `function setOwner(address x) public onlyOwner {
    owner = x;
}`

	assert.Empty(t, runDetector(t, "access-control", source, domain.WindowModeLegacy))
}

func TestAccessControl_BodyRequireGuards(t *testing.T) {
	source := `function setOwner(address x) public {
    require(msg.sender == owner);
    owner = x;
}`

	assert.Empty(t, runDetector(t, "access-control", source, domain.WindowModeLegacy))
}

func TestAccessControl_UnguardedPublicFunctionIsHigh(t *testing.T) {
	source := `contract C {
    function burn(uint256 amount) public {
        supply = supply - amount;
    }
}`

	findings := runDetector(t, "access-control", source, domain.WindowModeLegacy)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, domain.SeverityHigh, f.Severity)
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, "Missing Access Control", f.Title)
	assert.Equal(t, []domain.Category{domain.CategorySecurity}, f.Categories)
}

func TestAccessControl_ExternalFunctionsCheckedToo(t *testing.T) {
	source := `function sweep() external {
    beneficiary.transfer(address(this).balance);
}`

	findings := runDetector(t, "access-control", source, domain.WindowModeLegacy)

	require.Len(t, findings, 1)
	assert.Equal(t, 1, findings[0].Line)
}

func TestAccessControl_InternalFunctionsIgnored(t *testing.T) {
	source := `function helper() internal {
    counter = counter + 1;
}
function secret() private {
    counter = 0;
}`

	assert.Empty(t, runDetector(t, "access-control", source, domain.WindowModeLegacy))
}

func TestAccessControl_LegacyScanStopsAtClosingBrace(t *testing.T) {
	// The guard sits after the function's closing brace; the legacy scan
	// must stop at the brace and still report the function.
	source := `function burn(uint256 amount) public {
    supply = supply - amount;
}
modifier onlyOwner() { require(msg.sender == owner); _; }`

	findings := runDetector(t, "access-control", source, domain.WindowModeLegacy)

	require.Len(t, findings, 1)
	assert.Equal(t, 1, findings[0].Line)
}
